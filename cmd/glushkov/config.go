package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"glushkov/internal/samples"
)

const (
	formatTable = "table"
	formatDOT   = "dot"
	formatGo    = "go"
)

type config struct {
	example string
	list    bool
	format  string
	out     string
	pkg     string
	name    string
	png     bool
	check   bool
	dump    bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("glushkov", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.example, "example", "", "sample expression to convert (default: all)")
	fs.BoolVar(&cfg.list, "list", false, "list the sample expressions")
	fs.StringVar(&cfg.format, "format", formatTable, "output format: table, dot or go")
	fs.StringVar(&cfg.out, "o", "-", "output file, - for stdout")
	fs.StringVar(&cfg.pkg, "pkg", "automata", "package name for -format go")
	fs.StringVar(&cfg.name, "name", "", "identifier prefix for -format go (default: derived from the sample)")
	fs.BoolVar(&cfg.png, "png", false, "render PNG via dot -Tpng (implies -format dot)")
	fs.BoolVar(&cfg.check, "check", false, "compare against the expected automaton of each sample")
	fs.BoolVar(&cfg.dump, "dump", false, "dump the expression tree to stderr")
	fs.BoolVar(&cfg.verbose, "v", false, "log positions, first, last and follow sets")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: glushkov [-example name] [-format table|dot|go] [-o file] [-png] [-check] [-dump] [-v]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.png {
		cfg.format = formatDOT
	}
	return cfg, cfg.validate()
}

func (c *config) validate() error {
	switch c.format {
	case formatTable, formatDOT, formatGo:
	default:
		return fmt.Errorf("unknown format %q", c.format)
	}
	if c.example != "" {
		if _, ok := samples.Lookup(c.example); !ok {
			return fmt.Errorf("unknown example %q (see -list)", c.example)
		}
	}
	if c.example == "" && (c.format == formatGo || c.png) {
		return fmt.Errorf("-format %s needs a single -example", c.format)
	}
	if c.png && (c.out == "" || c.out == "-") {
		return errors.New("-png needs an output file (-o)")
	}
	if c.out == "" {
		return errors.New("output file cannot be empty")
	}
	return nil
}
