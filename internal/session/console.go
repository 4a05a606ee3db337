package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrInputClosed is returned by ReadLine once the input stream has ended.
// It matches io.EOF, but io.EOF from elsewhere does not match it.
var ErrInputClosed = fmt.Errorf("input closed: %w", io.EOF)

type line struct {
	text string
	err  error
}

// Console reads operator input one line at a time. It is shared by the
// session loop and the clarification prompt so both consume the same stream.
//
// Reads happen on a background goroutine so that a blocked read can be
// abandoned when the context is cancelled (for example on Ctrl-C).
type Console struct {
	in    io.Reader
	out   io.Writer
	lines chan line
	once  sync.Once
}

// NewConsole creates a console over in, printing prompts to out
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    in,
		out:   out,
		lines: make(chan line),
	}
}

func (c *Console) start() {
	go func() {
		defer close(c.lines)

		scanner := bufio.NewScanner(c.in)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			c.lines <- line{text: strings.TrimRight(scanner.Text(), "\r")}
		}

		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		c.lines <- line{err: err}
	}()
}

// ReadLine blocks until a line is available, the input ends (ErrInputClosed)
// or ctx is done.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	c.once.Do(c.start)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok || errors.Is(l.err, io.EOF) {
			return "", ErrInputClosed
		}
		return l.text, l.err
	}
}

// Ask prints prompt without a newline and reads the answer
func (c *Console) Ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	return c.ReadLine(ctx)
}
