package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// maxPromptLineLength bounds a single secret line; passcodes are far shorter.
const maxPromptLineLength = 256

var errPromptLineTooLong = errors.New("input line too long")

func readPasscodeNoEcho(stdin *os.File) (string, error) {
	if stdin == nil {
		return "", errors.New("stdin unavailable")
	}

	restore, err := disableEcho(stdin)
	if err != nil {
		return "", err
	}
	defer restore()

	return readSecretLine(stdin)
}

// readSecretLine reads up to the first newline and strips the line ending.
func readSecretLine(source io.Reader) (string, error) {
	reader := bufio.NewReaderSize(io.LimitReader(source, maxPromptLineLength+1), 64)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if len(line) > maxPromptLineLength {
		return "", errPromptLineTooLong
	}
	return strings.TrimRight(line, "\r\n"), nil
}
