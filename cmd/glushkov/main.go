package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
	"unicode"

	"github.com/k0kubun/pp/v3"

	"glushkov/internal/automaton"
	"glushkov/internal/glushkov"
	"glushkov/internal/regex"
	"glushkov/internal/samples"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "glushkov: ", 0)

	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.Print(err)
		return 2
	}

	if cfg.list {
		for _, s := range samples.All() {
			fmt.Fprintf(stdout, "%-10s %s\n", s.Name, s.Description)
		}
		return 0
	}

	selected := samples.All()
	if cfg.example != "" {
		selected = []samples.Sample{samples.MustLookup(cfg.example)}
	}

	trace := glushkov.NewLogger(cfg.verbose)
	trace.SetOutput(stderr)
	conv := glushkov.NewConverter(trace)

	var buf bytes.Buffer
	failed := 0
	for _, s := range selected {
		re := s.Build()
		if cfg.dump {
			printer := pp.New()
			printer.SetOutput(stderr)
			printer.SetColoringEnabled(false)
			printer.SetExportedOnly(false)
			printer.Println(re)
		}

		nfa := conv.Convert(re)
		if cfg.check {
			want, err := s.Expected()
			if err != nil {
				logger.Print(err)
				return 1
			}
			if !automaton.Equal(nfa, want) {
				logger.Printf("%s: automaton differs from the expected one", s.Name)
				failed++
			}
		}

		if err := render(&buf, cfg, s.Name, re, nfa); err != nil {
			logger.Print(err)
			return 1
		}
	}

	if err := emit(cfg, &buf, stdout, stderr); err != nil {
		logger.Print(err)
		return 1
	}
	if failed > 0 {
		logger.Printf("%d of %d samples failed", failed, len(selected))
		return 1
	}
	return 0
}

func render(w io.Writer, cfg *config, name string, re *regex.RegExp, nfa *automaton.NFA) error {
	switch cfg.format {
	case formatDOT:
		return automaton.WriteDOT(w, nfa)
	case formatGo:
		ident := cfg.name
		if ident == "" {
			ident = identifier(name)
		}
		return automaton.EmitGo(w, nfa, automaton.GoOptions{Package: cfg.pkg, Name: ident})
	default:
		fmt.Fprintf(w, "%s: %s\n", name, re)
		if err := automaton.WriteTable(w, nfa); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
}

// emit writes the rendered output to stdout, a file, or through dot -Tpng.
func emit(cfg *config, buf *bytes.Buffer, stdout, stderr io.Writer) error {
	if cfg.png {
		cmd := exec.Command("dot", "-Tpng", "-o", cfg.out)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("dot failed: %w", err)
		}
		fmt.Fprintf(stdout, "PNG written to %s\n", cfg.out)
		return nil
	}

	if cfg.out == "-" {
		_, err := io.Copy(stdout, buf)
		return err
	}
	if err := os.WriteFile(cfg.out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cannot create %s: %w", cfg.out, err)
	}
	fmt.Fprintf(stdout, "%s written to %s\n", strings.ToUpper(cfg.format), cfg.out)
	return nil
}

// identifier turns a sample name into an exported Go identifier.
func identifier(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
