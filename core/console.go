package core

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

// Console is the character device a running program reads from and writes
// to.
type Console interface {
	// ReadLine blocks until one line of input is available and returns it
	// without interpretation. End of input yields an empty line and no error.
	ReadLine() (string, error)

	// WriteRune emits a single character.
	WriteRune(r rune) error
}

type stdConsole struct {
	in  *bufio.Reader
	out io.Writer
	buf [utf8.UTFMax]byte
}

// NewConsole creates a console that reads lines from in and writes UTF-8
// encoded characters to out. Output is not buffered.
func NewConsole(in io.Reader, out io.Writer) Console {
	return &stdConsole{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *stdConsole) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return line, nil
	}

	return line, err
}

func (c *stdConsole) WriteRune(r rune) error {
	n := utf8.EncodeRune(c.buf[:], r)
	_, err := c.out.Write(c.buf[:n])

	return err
}
