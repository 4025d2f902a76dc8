package main

import (
	"context"
	"os"

	_ "github.com/puellanivis/breton/lib/files/datafiles"
	_ "github.com/puellanivis/breton/lib/files/home"
	"github.com/puellanivis/breton/lib/glog"
	flag "github.com/puellanivis/breton/lib/gnuflag"
	"github.com/puellanivis/breton/lib/os/process"
)

// Version information ready for build-time injection.
var (
	Version    = "v0.0.0"
	Buildstamp = "dev"
)

// sources returns the sources named on the command-line, and in any -f lists,
// falling back to standard input when none are named.
func sources(ctx context.Context) (filenames []string, ok bool) {
	filenames, ok = flag.Args(), true

	for _, file := range Flags.Files {
		list, err := FileCeption(ctx, file)
		if err != nil {
			glog.Error(err)
			ok = false
			continue
		}

		filenames = append(filenames, list...)
	}

	if len(filenames) < 1 {
		filenames = append(filenames, "-")
	}

	return filenames, ok
}

func run(ctx context.Context) (status int) {
	if glog.V(2) {
		if err := flag.Set("stderrthreshold", "INFO"); err != nil {
			glog.Error(err)
		}
	}

	out, err := getOutput(ctx, Flags.Output, Flags.Unbuffered)
	if err != nil {
		glog.Error("could not open output: ", err)
		return 1
	}

	filenames, ok := sources(ctx)
	if !ok {
		status = 1
	}

	if Flags.List {
		for _, filename := range filenames {
			if err := ListFile(ctx, out, filename); err != nil {
				glog.Error(err)
				status = 1
			}
		}

		if err := out.Close(); err != nil {
			glog.Error(err)
			return 1
		}

		return status
	}

	acc := newLineAccumulator(out, configFromFlags())

	for _, filename := range filenames {
		if err := CatFile(ctx, acc, filename); err != nil {
			glog.Error(err)
			status = 1
		}
	}

	if err := acc.Close(); err != nil {
		glog.Error(err)
		return 1
	}

	return status
}

func main() {
	flag.Set("logtostderr", "true")

	ctx, finish := process.Init("linecat", Version, Buildstamp)

	status := run(ctx)

	finish()
	os.Exit(status)
}
