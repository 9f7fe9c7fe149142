package utils

import (
	"os"

	"github.com/pkg/errors"
)

func Exist(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}

// ReadSource loads a whole source file into memory.
func ReadSource(path string) (string, error) {
	if !Exist(path) {
		return "", errors.Errorf("file not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "can't read %s", path)
	}
	return string(data), nil
}
