package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"git.lolli.tech/lollipopkit/kl/compiler"
	"git.lolli.tech/lollipopkit/kl/compiler/parser"
)

type Config struct {
	Precedence        parser.Precedence
	NarrowIdentifiers bool
	Debug             bool
	LogFile           string
}

func Default() Config {
	return Config{Precedence: parser.DefaultPrecedence()}
}

func (c Config) CompilerOptions() compiler.Options {
	return compiler.Options{
		Precedence:        c.Precedence,
		NarrowIdentifiers: c.NarrowIdentifiers,
	}
}

// file is the on-disk shape shared by the TOML and YAML decoders.
type file struct {
	Precedence        map[string]int `toml:"precedence" yaml:"precedence"`
	NarrowIdentifiers bool           `toml:"narrow_identifiers" yaml:"narrow_identifiers"`
	Debug             bool           `toml:"debug" yaml:"debug"`
	LogFile           string         `toml:"log_file" yaml:"log_file"`
}

// Load reads a JSON, TOML or YAML config, chosen by extension. An empty
// path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		f, err = decodeJSON(data)
	case ".toml":
		_, err = toml.Decode(string(data), &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		return Config{}, errors.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "decode %s", path)
	}
	return f.build()
}

func decodeJSON(data []byte) (file, error) {
	var f file
	if !gjson.ValidBytes(data) {
		return f, errors.New("invalid json")
	}
	doc := gjson.ParseBytes(data)
	if prec := doc.Get("precedence"); prec.Exists() {
		if !prec.IsObject() {
			return f, errors.New("precedence must be an object")
		}
		f.Precedence = map[string]int{}
		var bad error
		prec.ForEach(func(key, value gjson.Result) bool {
			if value.Type != gjson.Number || value.Float() != float64(value.Int()) {
				bad = errors.Errorf("precedence of %q must be an integer", key.String())
				return false
			}
			f.Precedence[key.String()] = int(value.Int())
			return true
		})
		if bad != nil {
			return f, bad
		}
	}
	f.NarrowIdentifiers = doc.Get("narrow_identifiers").Bool()
	f.Debug = doc.Get("debug").Bool()
	f.LogFile = doc.Get("log_file").String()
	return f, nil
}

func (f file) build() (Config, error) {
	c := Default()
	c.NarrowIdentifiers = f.NarrowIdentifiers
	c.Debug = f.Debug
	c.LogFile = f.LogFile
	if f.Precedence == nil {
		return c, nil
	}

	c.Precedence = make(parser.Precedence, len(f.Precedence))
	for op, prec := range f.Precedence {
		r, err := validOperator(op)
		if err != nil {
			return Config{}, err
		}
		if prec <= 0 {
			return Config{}, errors.Errorf("precedence of %q must be positive, got %d", op, prec)
		}
		c.Precedence[r] = prec
	}
	return c, nil
}

// validOperator returns the rune of op when the lexer can hand it out as a
// single-character token that the grammar does not already claim.
func validOperator(op string) (rune, error) {
	r, size := utf8.DecodeRuneInString(op)
	if size == 0 || size != len(op) || r == utf8.RuneError {
		return 0, errors.Errorf("operator %q must be a single character", op)
	}
	switch {
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
		return 0, errors.Errorf("operator %q cannot be a letter, digit or space", op)
	case strings.ContainsRune("(),#", r):
		return 0, errors.Errorf("operator %q is reserved", op)
	}
	return r, nil
}
