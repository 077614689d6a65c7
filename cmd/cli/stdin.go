package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
)

type fileDescriptor interface {
	Fd() uintptr
}

// isInteractive reports whether stream is a terminal. Readers and writers
// that are not files never are.
func isInteractive(stream any) bool {
	f, ok := stream.(fileDescriptor)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// eachLine calls fn for every line of r without its line break.
func eachLine(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}
