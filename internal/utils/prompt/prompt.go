// Package prompt provides helpers for reading labelled values from an
// interactive terminal session.
//
// Every menu operation asks for at least one value. Rather than
// repeating the same print-label / read-line / trim dance in every
// operation, we centralise it here. The Reader is built on plain
// io.Reader/io.Writer so tests can drive it with in-memory buffers.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader reads labelled values from an input stream, echoing each label
// to the paired output stream first.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Reader over the given streams. In production these are
// os.Stdin and os.Stdout.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Line prints the label and returns the next input line without its
// trailing newline. A final line with no newline still counts; a fully
// exhausted stream returns io.EOF.
func (r *Reader) Line(label string) (string, error) {
	fmt.Fprint(r.out, label)

	line, err := r.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// Int prints the label and reads an integer. Non-numeric input is
// rejected with a message and the prompt repeats; only a failure of the
// input stream itself ends the loop.
func (r *Reader) Int(label string) (int, error) {
	for {
		line, err := r.Line(label)
		if err != nil {
			return 0, err
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(r.out, "Please enter a number.")
			continue
		}
		return n, nil
	}
}
