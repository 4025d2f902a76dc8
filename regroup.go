package main

import (
	"unicode/utf8"
)

// sequenceLen returns the length of the sequence started by the lead byte c.
// Anything below 0xC0 stands on its own.
func sequenceLen(c byte) int {
	switch {
	case c >= 0xF0:
		return 4
	case c >= 0xE0:
		return 3
	case c >= 0xC0:
		return 2
	}

	return 1
}

func isContinuation(c byte) bool {
	return c&0xC0 == 0x80
}

var (
	leadMask = [...]byte{2: 0x1F, 3: 0x0F, 4: 0x07}
	minRune  = [...]rune{2: 0x80, 3: 0x800, 4: 0x10000}
)

// decodeSequence folds a complete multi-byte sequence into its codepoint.
//
// Overlong forms, surrogates, and values past utf8.MaxRune are rejected,
// so a successful decode always re-encodes to exactly seq.
func decodeSequence(seq []byte) (rune, error) {
	n := len(seq)
	if n < 2 || n > utf8.UTFMax || sequenceLen(seq[0]) != n || seq[0] >= 0xF8 {
		return utf8.RuneError, &DecodeError{Seq: seq}
	}

	r := rune(seq[0] & leadMask[n])
	for _, c := range seq[1:] {
		if !isContinuation(c) {
			return utf8.RuneError, &DecodeError{Seq: seq}
		}

		r = r<<6 | rune(c&0x3F)
	}

	if r < minRune[n] || !utf8.ValidRune(r) {
		return utf8.RuneError, &DecodeError{Seq: seq}
	}

	return r, nil
}

// regrouper collects the bytes of multi-byte sequences, so that they are displayed
// as whole characters rather than byte by byte.
//
// Every byte handed to a regrouper comes back out: either as part of a decoded
// character, or through appendByte when it cannot be part of one.
type regrouper struct {
	seq  [utf8.UTFMax]byte
	n    int // bytes collected in seq
	want int // continuation bytes still expected
}

func (g *regrouper) reset() {
	g.n, g.want = 0, 0
}

// pending reports whether a sequence has been started but not completed.
func (g *regrouper) pending() bool {
	return g.n > 0
}

// append feeds c into the regrouper, and appends whatever became displayable to dst.
func (g *regrouper) append(dst []byte, c byte, cfg Config) []byte {
	if g.pending() {
		if isContinuation(c) {
			g.seq[g.n] = c
			g.n++
			g.want--

			if g.want == 0 {
				dst = g.resolve(dst, cfg)
			}

			return dst
		}

		// The sequence was cut short, c has to be looked at on its own.
		dst = g.flush(dst, cfg)
	}

	if l := sequenceLen(c); l > 1 {
		g.seq[0] = c
		g.n, g.want = 1, l-1
		return dst
	}

	return appendByte(dst, c, cfg)
}

// resolve decodes the completed sequence.
func (g *regrouper) resolve(dst []byte, cfg Config) []byte {
	seq := g.seq[:g.n]
	g.reset()

	r, err := decodeSequence(seq)
	if err != nil {
		return appendBytes(dst, seq, cfg)
	}

	return utf8.AppendRune(dst, r)
}

// flush gives up on any incomplete sequence and appends its bytes individually.
func (g *regrouper) flush(dst []byte, cfg Config) []byte {
	seq := g.seq[:g.n]
	g.reset()

	return appendBytes(dst, seq, cfg)
}
