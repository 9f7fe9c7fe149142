package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"
	xterm "golang.org/x/term"

	"git.lolli.tech/lollipopkit/kl/compiler"
	"git.lolli.tech/lollipopkit/kl/compiler/ast"
	"git.lolli.tech/lollipopkit/kl/compiler/parser"
	"git.lolli.tech/lollipopkit/kl/config"
	"git.lolli.tech/lollipopkit/kl/consts"
	. "git.lolli.tech/lollipopkit/kl/json"
	"git.lolli.tech/lollipopkit/kl/logger"
	"git.lolli.tech/lollipopkit/kl/utils"
)

const (
	prompt     = "> "
	morePrompt = ". "
)

var (
	helpMsgs = []string{
		"`.help`: Show this message",
		"`.history`: Show input history",
		"`.reset`: Drop the unfinished input",
		"`.exit`: Exit REPL (or Ctrl + d)",
		"",
		"Input is parsed once its parentheses balance.",
	}
	historyPath = filepath.Join(os.Getenv("HOME"), ".config", "kl_history.json")

	okColor  = color.New(color.FgGreen)
	errColor = color.New(color.FgHiRed)
)

type session struct {
	opts        compiler.Options
	out         io.Writer
	historyPath string // "" disables persistence
	history     []string
	blockLines  []string
}

func newSession(cfg config.Config, out io.Writer, historyPath string) *session {
	s := &session{
		opts:        cfg.CompilerOptions(),
		out:         out,
		historyPath: historyPath,
	}
	s.loadHistory()
	return s
}

// Repl reads forms from stdin until EOF or `.exit`.
func Repl(cfg config.Config) error {
	fmt.Printf(
		"kl (v%s) - %s for help\n",
		color.HiCyanString(consts.VERSION),
		okColor.Sprint("`.help`"),
	)

	fd := int(os.Stdin.Fd())
	if !xterm.IsTerminal(fd) {
		return newSession(cfg, os.Stdout, historyPath).run(bufio.NewScanner(os.Stdin))
	}

	oldState, err := xterm.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer xterm.Restore(fd, oldState)

	t := xterm.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, prompt)
	s := newSession(cfg, t, historyPath)
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !s.feed(line) {
			return nil
		}
		if len(s.blockLines) > 0 {
			t.SetPrompt(morePrompt)
		} else {
			t.SetPrompt(prompt)
		}
	}
}

func (s *session) run(sc *bufio.Scanner) error {
	for sc.Scan() {
		if !s.feed(sc.Text()) {
			return nil
		}
	}
	return sc.Err()
}

// feed handles one line of input. It returns false once the user asked
// to leave. An empty line forces evaluation of unfinished input.
func (s *session) feed(line string) bool {
	switch strings.TrimSpace(line) {
	case ".exit", ".quit":
		return false
	case ".help":
		fmt.Fprintln(s.out, strings.Join(helpMsgs, "\n"))
		return true
	case ".history":
		for idx, h := range s.history {
			fmt.Fprintf(s.out, "%3d  %s\n", idx+1, h)
		}
		return true
	case ".reset":
		s.blockLines = nil
		return true
	case "":
		if len(s.blockLines) == 0 {
			return true
		}
	default:
		s.blockLines = append(s.blockLines, line)
		if s.incomplete(strings.Join(s.blockLines, "\n")) {
			return true
		}
	}

	block := strings.Join(s.blockLines, "\n")
	s.blockLines = nil
	s.eval(block)
	s.updateHistory(block)
	return true
}

// incomplete reports whether block stops in the middle of a form.
func (s *session) incomplete(block string) bool {
	if blockDepth(block) > 0 {
		return true
	}
	_, errs := compiler.ParseAll(block, consts.StdinChunkName, s.opts)
	return slices.ContainsFunc(errs, parser.IsUnexpectedEOF)
}

func (s *session) eval(block string) {
	p := compiler.NewParser(block, consts.StdinChunkName, s.opts)
	for form, err := range p.Forms() {
		if err != nil {
			fmt.Fprintln(s.out, errColor.Sprint("Error: "+err.Error()))
			continue
		}
		fmt.Fprintln(s.out, okColor.Sprint(compiler.Describe(form)))
		fmt.Fprintln(s.out, "  "+ast.Format(form))
	}
}

// blockDepth counts unclosed parentheses, ignoring comments.
func blockDepth(block string) int {
	depth := 0
	inComment := false
	for _, c := range block {
		switch {
		case c == '\n':
			inComment = false
		case inComment:
		case c == '#':
			inComment = true
		case c == '(':
			depth++
		case c == ')':
			depth--
		}
	}
	return depth
}

func (s *session) _updateHistory(str string) {
	if idx := slices.Index(s.history, str); idx != -1 {
		s.history = slices.Delete(s.history, idx, idx+1)
	}
	s.history = append(s.history, str)
}

func (s *session) updateHistory(block string) {
	block = strings.Trim(block, "\n")
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		s._updateHistory(line)
	}
	s.writeHistory()
}

func (s *session) writeHistory() {
	if s.historyPath == "" {
		return
	}
	data, err := Json.MarshalIndent(s.history, "", "  ")
	if err != nil {
		logger.W("[REPL] marshal history failed: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.historyPath), 0755); err != nil {
		logger.W("[REPL] create history dir failed: %v", err)
		return
	}
	if err := os.WriteFile(s.historyPath, data, 0644); err != nil {
		logger.W("[REPL] write history failed: %v", err)
	}
}

func (s *session) loadHistory() {
	if s.historyPath == "" || !utils.Exist(s.historyPath) {
		return
	}
	data, err := os.ReadFile(s.historyPath)
	if err != nil {
		logger.W("[REPL] read history failed: %v", err)
		return
	}
	if err := Json.Unmarshal(data, &s.history); err != nil {
		logger.W("[REPL] unmarshal history failed: %v", err)
	}
}
