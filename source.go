package main

import (
	"bytes"
	"context"
	"io"
	"sort"
	"time"

	"github.com/puellanivis/breton/lib/display/tables"
	"github.com/puellanivis/breton/lib/files"
	"github.com/puellanivis/breton/lib/glog"
)

// displayName shortens the name of an opened source for logging,
// noting when the source was redirected from what was asked for.
func displayName(filename string, opened string) string {
	printName := filename
	if filename != "" && filename != "-" && filename != opened {
		glog.Infof("redirected: %s", opened)
	}

	if len(printName) > 40 {
		printName = printName[:40] + "…"
	}

	return printName
}

// CatFile copies the given source through out.
// Any line left incomplete at the end of the source is flushed before returning.
func CatFile(ctx context.Context, out *lineAccumulator, filename string) error {
	if glog.V(10) {
		glog.Infof("enter CatFile")
	}

	in, err := files.Open(ctx, filename)
	if err != nil {
		return &SourceOpenError{
			Name: filename,
			Err:  err,
		}
	}

	defer func() {
		if err := in.Close(); err != nil {
			glog.Error(err)
		}
	}()

	printName := displayName(filename, in.Name())

	if glog.V(5) {
		glog.Infof("CatFile: %s", printName)
	}

	start := time.Now()

	n, err := files.Copy(ctx, out, in)

	// Whatever made it in still gets out, even if the copy failed.
	if ferr := out.EndSource(); err == nil || err == io.EOF {
		err = ferr
	}

	if err != nil {
		if n > 0 {
			glog.Errorf("%s: %d bytes copied in %v", printName, n, time.Since(start))
		}

		return err
	}

	if glog.V(2) {
		glog.Infof("%s: %d bytes copied in %v", printName, n, time.Since(start))
	}

	return nil
}

// parseSourceList returns the non-empty lines of data, with surrounding whitespace trimmed.
func parseSourceList(data []byte) []string {
	var list []string

	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)

		if len(line) < 1 {
			continue
		}

		list = append(list, string(line))
	}

	return list
}

// readSourceList reads all of in as a list of sources.
// files.ReadFrom closes in once it has been read.
func readSourceList(in io.Reader) ([]string, error) {
	data, err := files.ReadFrom(in)
	if err != nil {
		return nil, err
	}

	return parseSourceList(data), nil
}

// FileCeption reads a list of sources from a file.
func FileCeption(ctx context.Context, filename string) ([]string, error) {
	if glog.V(10) {
		glog.Infof("enter FileCeption")
	}

	in, err := files.Open(ctx, filename)
	if err != nil {
		return nil, &SourceOpenError{
			Name: filename,
			Err:  err,
		}
	}

	printName := displayName(filename, in.Name())

	if glog.V(5) {
		glog.Infof("FileCeption: %s", printName)
	}

	list, err := readSourceList(in)
	if err != nil {
		return nil, err
	}

	if glog.V(2) {
		glog.Infof("%s: %d sources listed", printName, len(list))
	}

	return list, nil
}

// ListFile lists the entries of the given directory to out.
func ListFile(ctx context.Context, out io.Writer, dirname string) error {
	fi, err := files.List(ctx, dirname)
	if err != nil {
		return &SourceOpenError{
			Name: dirname,
			Err:  err,
		}
	}

	sort.Slice(fi, func(i, j int) bool {
		return fi[i].Name() < fi[j].Name()
	})

	var t tables.Table
	for _, info := range fi {
		lm := info.ModTime().Format(time.RFC3339)

		t = tables.Append(t, info.Mode(), info.Size(), lm, info.Name())
	}

	tables.Empty.WriteSimple(out, t)
	return nil
}
