package main

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/puellanivis/breton/lib/files"
	"github.com/puellanivis/breton/lib/glog"
)

// bufferedOutput holds writes to an output until it fills, or until Close.
type bufferedOutput struct {
	*bufio.Writer
	c io.Closer
}

func (w *bufferedOutput) Close() error {
	if err := w.Flush(); err != nil {
		w.c.Close()
		return err
	}

	return w.c.Close()
}

func isStdout(filename string) bool {
	switch filename {
	case "", "-", "/dev/stdout":
		return true
	}

	return false
}

// isTerminal reports whether out, as opened from filename, is a terminal.
func isTerminal(filename string, out io.Writer) bool {
	var fd uintptr

	switch f := out.(type) {
	case interface{ Fd() uintptr }:
		fd = f.Fd()
	default:
		if !isStdout(filename) {
			return false
		}
		fd = os.Stdout.Fd()
	}

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// getOutput opens the output named by filename.
// Unless unbuffered is set, or the output is a terminal, writes are buffered until Close.
func getOutput(ctx context.Context, filename string, unbuffered bool) (io.WriteCloser, error) {
	out, err := files.Create(ctx, filename)
	if err != nil {
		return nil, err
	}

	if !isStdout(filename) {
		if printName := out.Name(); printName != filename {
			glog.Info("output redirected: ", printName)
		}
	}

	if unbuffered || isTerminal(filename, out) {
		return out, nil
	}

	return &bufferedOutput{
		Writer: bufio.NewWriter(out),
		c:      out,
	}, nil
}
