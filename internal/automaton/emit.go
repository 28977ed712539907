package automaton

import (
	"errors"
	"fmt"
	"go/token"
	"io"

	"github.com/dave/jennifer/jen"
)

// ErrInvalidOptions is returned by EmitGo for unusable options.
var ErrInvalidOptions = errors.New("invalid options")

// GoOptions configures EmitGo.
type GoOptions struct {
	// Package is the package clause of the generated file.
	Package string

	// Name prefixes every generated identifier, e.g. "Mixed" yields
	// MixedInitial, MixedStates, MixedFinal and MixedTransitions.
	Name string
}

func (o GoOptions) Validate() error {
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("%w: package %q is not an identifier", ErrInvalidOptions, o.Package)
	}
	if !token.IsIdentifier(o.Name) || !token.IsExported(o.Name) {
		return fmt.Errorf("%w: name %q is not an exported identifier", ErrInvalidOptions, o.Name)
	}
	return nil
}

// EmitGo writes a Go source file declaring n as plain tables.
func EmitGo(w io.Writer, n *NFA, opts GoOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	f := jen.NewFile(opts.Package)
	f.HeaderComment("Code generated by glushkov. DO NOT EDIT.")

	f.Commentf("%sInitial is the initial state of the automaton.", opts.Name)
	f.Const().Id(opts.Name + "Initial").Op("=").Lit(int(n.Initial))

	states := make([]jen.Code, 0, len(n.States))
	for _, st := range n.States.Sorted() {
		states = append(states, jen.Lit(int(st)))
	}
	f.Commentf("%sStates lists every state in ascending order.", opts.Name)
	f.Var().Id(opts.Name + "States").Op("=").Index().Int().Values(states...)

	f.Commentf("%sFinal holds the accepting states.", opts.Name)
	f.Var().Id(opts.Name + "Final").Op("=").Map(jen.Int()).Bool().Values(jen.DictFunc(func(d jen.Dict) {
		for _, st := range n.Final.Sorted() {
			d[jen.Lit(int(st))] = jen.True()
		}
	}))

	bySource := map[State][]Key{}
	for _, k := range n.Keys() {
		bySource[k.From] = append(bySource[k.From], k)
	}
	f.Commentf("%sTransitions maps a state and a symbol to the destination states.", opts.Name)
	f.Var().Id(opts.Name + "Transitions").Op("=").Map(jen.Int()).Map(jen.Rune()).Index().Int().Values(jen.DictFunc(func(d jen.Dict) {
		for from, keys := range bySource {
			d[jen.Lit(int(from))] = jen.Values(jen.DictFunc(func(inner jen.Dict) {
				for _, k := range keys {
					dst := make([]jen.Code, 0, len(n.Transitions[k]))
					for _, to := range n.Transitions[k].Sorted() {
						dst = append(dst, jen.Lit(int(to)))
					}
					inner[jen.LitRune(rune(k.Symbol))] = jen.Values(dst...)
				}
			}))
		}
	}))

	if err := f.Render(w); err != nil {
		return fmt.Errorf("render go source: %w", err)
	}
	return nil
}
