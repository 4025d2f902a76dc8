package main

// appendByte appends the display form of c to dst.
//
// Without -v or -T every byte is appended as is.
// Otherwise control bytes use ^ notation, DEL is ^?, and bytes with the high bit set
// are prefixed with M- followed by the display form of their low seven bits.
// LFD is always literal, and TAB is literal unless tabs are shown.
func appendByte(dst []byte, c byte, cfg Config) []byte {
	if !cfg.escaping() {
		return append(dst, c)
	}

	switch {
	case c == '\t':
		if cfg.ShowTabs {
			return append(dst, '^', 'I')
		}
		return append(dst, c)

	case c == '\n':
		return append(dst, c)

	case c < 32:
		return append(dst, '^', c+'@')

	case c < 127:
		return append(dst, c)

	case c == 127:
		return append(dst, '^', '?')

	case c < 128+32:
		return append(dst, 'M', '-', '^', c-128+'@')

	case c == 255:
		return append(dst, 'M', '-', '^', '?')
	}

	return append(dst, 'M', '-', c-128)
}

// appendBytes appends the display form of each byte of data to dst.
func appendBytes(dst, data []byte, cfg Config) []byte {
	for _, c := range data {
		dst = appendByte(dst, c, cfg)
	}

	return dst
}
