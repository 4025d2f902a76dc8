package main

import (
	"fmt"
	"io"
)

func splitLines(data []byte) [][]byte {
	var fields [][]byte
	var last int
	for i := 0; i < len(data); i++ {
		if data[i] == '\n' {
			fields = append(fields, data[last:i+1:i+1])
			last = i + 1
		}
	}
	if last != len(data) {
		fields = append(fields, data[last:])
	}
	return fields
}

// isBlank reports whether line holds nothing but its newline.
func isBlank(line []byte) bool {
	return len(line) < 1 || (len(line) == 1 && line[0] == '\n')
}

var newline = []byte{'\n'}

// lineAccumulator collects written bytes into lines,
// and writes each completed line transformed according to its Config.
//
// One lineAccumulator is meant to be shared across every source in a run,
// so that line numbers and squeezed blank runs continue from one source into the next.
// EndSource must be called after each source, and Close after the last one.
type lineAccumulator struct {
	io.WriteCloser
	cfg Config

	lineno       uint
	pendingBlank bool
	partial      bool // the last line written had no newline

	line    []byte // bytes received since the last newline
	out     []byte // display form of the line being flushed
	regroup regrouper
}

func newLineAccumulator(w io.WriteCloser, cfg Config) *lineAccumulator {
	return &lineAccumulator{
		WriteCloser: w,
		cfg:         cfg,
		lineno:      1,
	}
}

func (w *lineAccumulator) Write(data []byte) (n int, err error) {
	for _, field := range splitLines(data) {
		w.line = append(w.line, field...)
		n += len(field)

		if field[len(field)-1] != '\n' {
			continue
		}

		if err := w.flushLine(); err != nil {
			return n, err
		}
	}

	return n, nil
}

// EndSource flushes any line left incomplete at the end of a source.
func (w *lineAccumulator) EndSource() error {
	if len(w.line) < 1 {
		return nil
	}

	return w.flushLine()
}

// Close flushes what remains of the input, including a squeezed run of trailing blank lines,
// and then closes the underlying writer.
func (w *lineAccumulator) Close() error {
	err := w.EndSource()

	if err == nil && w.pendingBlank {
		w.pendingBlank = false
		w.out = w.appendLine(w.out[:0], newline, true)
		_, err = w.WriteCloser.Write(w.out)
	}

	if cerr := w.WriteCloser.Close(); err == nil {
		err = cerr
	}

	return err
}

func (w *lineAccumulator) flushLine() error {
	line := w.line
	w.line = w.line[:0]

	blank := isBlank(line)
	out := w.out[:0]

	if w.cfg.SqueezeBlank {
		// A lone newline after a partial line ends that line, it does not start a blank run.
		if blank && !w.partial {
			// Held back until a nonblank line shows up, or the input ends.
			w.pendingBlank = true
			return nil
		}

		if w.pendingBlank {
			w.pendingBlank = false
			out = w.appendLine(out, newline, true)
		}
	}

	out = w.appendLine(out, line, blank)
	w.out = out
	w.partial = line[len(line)-1] != '\n'

	_, err := w.WriteCloser.Write(out)
	return err
}

// appendLine appends the display form of line to out, numbering it if called for.
func (w *lineAccumulator) appendLine(out, line []byte, blank bool) []byte {
	if w.cfg.numbers(blank) {
		out = fmt.Appendf(out, "%6d\t", w.lineno)
		w.lineno++
	}

	body, eol := line, false
	if n := len(line); n > 0 && line[n-1] == '\n' {
		body, eol = line[:n-1], true
	}

	if w.cfg.escaping() {
		out = appendBytes(out, body, w.cfg)
	} else {
		for _, c := range body {
			out = w.regroup.append(out, c, w.cfg)
		}
		out = w.regroup.flush(out, w.cfg)
	}

	if eol {
		if w.cfg.ShowEnds {
			out = append(out, '$')
		}
		out = append(out, '\n')
	}

	return out
}
