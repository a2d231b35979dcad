package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/htmltag"
	"github.com/mattn/go-isatty"
)

type cmdopts struct {
	Encoding string `long:"encoding" default:"utf-8" description:"character encoding of the input"`
	Trace    bool   `long:"trace" description:"write parser trace logs to stderr"`
	Version  bool   `long:"version" description:"display the version of the library"`
}

type input struct {
	name string
	rdr  io.Reader
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("htmltag-lint: using htmltag version %s\n", htmltag.Version)
}

func showUsage() {
	fmt.Printf(`Usage : htmltag-lint [options] files ...
	Parse the leading start tag of each file and output the result
	--encoding : character encoding of the input (default utf-8)
	--trace    : write parser trace logs to stderr
	--version  : display the version of the library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	var inputs []input
	switch {
	case len(args) > 0: // filename present
		for _, f := range args {
			fh, err := os.Open(f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
			defer fh.Close()
			inputs = append(inputs, input{name: f, rdr: fh})
		}
	case !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()):
		inputs = append(inputs, input{name: "-", rdr: os.Stdin})
	default:
		showUsage()
		return 1
	}

	ctx := context.Background()
	if opts.Trace {
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ctx = htmltag.WithTraceLogger(ctx, logger)
	}

	for _, in := range inputs {
		if err := lint(ctx, os.Stdout, in, opts.Encoding); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", in.name, err)
			return 1
		}
	}
	return 0
}

func lint(ctx context.Context, out io.Writer, in input, encoding string) error {
	buf, err := io.ReadAll(in.rdr)
	if err != nil {
		return err
	}

	p, err := htmltag.NewParserBytes(buf, htmltag.WithEncoding(encoding))
	if err != nil {
		return err
	}

	// leading whitespace is not part of the grammar, but files usually have it
	p.ParseWhiteSpace()

	elem, err := p.Parse(ctx)
	if err != nil {
		if errors.Is(err, htmltag.ErrNoMatch) {
			return fmt.Errorf("no start tag found at line %d, column %d", p.Location().Row, p.Location().Col)
		}
		return err
	}

	d := htmltag.Dumper{}
	if err := d.DumpElement(out, elem); err != nil {
		return err
	}
	start, end := elem.Start(), elem.End()
	fmt.Fprintf(out, "\n%s:%d:%d-%d:%d\n", in.name, start.Row, start.Col, end.Row, end.Col)

	if _, dups := elem.AttributeMap(); len(dups) > 0 {
		for _, name := range dups {
			fmt.Fprintf(os.Stderr, "%s: warning: duplicate attribute '%s'\n", in.name, name)
		}
	}
	return nil
}
