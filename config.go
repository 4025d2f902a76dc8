package main

import (
	flag "github.com/puellanivis/breton/lib/gnuflag"
)

// Flags contains all of the flags defined for the application.
var Flags struct {
	Output string `flag:",short=o"  desc:"Specifies which file to write the output to"`
	List   bool   `flag:"list"      desc:"If set, list files instead of catting them."`

	ShowAll         bool `flag:",short=A"  desc:"equivalent to -vET"`
	NumberNonblank  bool `flag:",short=b"  desc:"number nonempty output lines, overrides -n"`
	ShowEnds        bool `flag:",short=E"  desc:"display $ at end of each line"`
	Number          bool `flag:",short=n"  desc:"number all output lines"`
	SqueezeBlank    bool `flag:",short=s"  desc:"suppress repeated empty output lines"`
	ShowTabs        bool `flag:",short=T"  desc:"display TAB characters as ^I"`
	ShowNonprinting bool `flag:",short=v"  desc:"use ^ and M- notation, except for LFD and TAB"`

	ShowAllButTabs bool `flag:"e" desc:"equivalent to -vE"`
	ShowAllButEnds bool `flag:"t" desc:"equivalent to -vT"`
	Unbuffered     bool `flag:"u" desc:"write each output line as soon as it is complete"`

	Files []string `flag:",short=f" desc:"Read list of files to output from given file(s)."`
}

func init() {
	flag.Struct("", &Flags)
}

// Config is the set of line transformations applied to every source.
// It is built once, and never modified afterwards.
type Config struct {
	NumberAll       bool
	NumberNonblank  bool
	SqueezeBlank    bool
	ShowNonprinting bool
	ShowTabs        bool
	ShowEnds        bool
}

// configFromFlags folds the compound flags into their component settings.
func configFromFlags() Config {
	cfg := Config{
		NumberAll:       Flags.Number,
		NumberNonblank:  Flags.NumberNonblank,
		SqueezeBlank:    Flags.SqueezeBlank,
		ShowNonprinting: Flags.ShowNonprinting,
		ShowTabs:        Flags.ShowTabs,
		ShowEnds:        Flags.ShowEnds,
	}

	if Flags.ShowAll { // equivalent to -vET
		cfg.ShowNonprinting = true
		cfg.ShowEnds = true
		cfg.ShowTabs = true
	}

	if Flags.ShowAllButTabs { // equivalent to -vE
		cfg.ShowNonprinting = true
		cfg.ShowEnds = true
	}

	if Flags.ShowAllButEnds { // equivalent to -vT
		cfg.ShowNonprinting = true
		cfg.ShowTabs = true
	}

	return cfg
}

// escaping reports whether bytes are rendered in ^ and M- notation.
func (c Config) escaping() bool {
	return c.ShowNonprinting || c.ShowTabs
}

// numbers reports whether a line of the given blankness gets a line number.
// Nonblank numbering takes precedence over numbering all lines.
func (c Config) numbers(blank bool) bool {
	if c.NumberNonblank {
		return !blank
	}

	return c.NumberAll
}
