package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/reoring/notation"
	"github.com/reoring/notation/dependency"
	"github.com/reoring/notation/fileresolve"
	"github.com/reoring/notation/maven"
)

// kind is a parser with its result type erased for printing.
type kind struct {
	parse    func(ctx context.Context, n any) (any, error)
	describe notation.Describer
}

func erase[T any](p *notation.Parser[T]) kind {
	return kind{
		parse: func(ctx context.Context, n any) (any, error) {
			v, err := p.Parse(ctx, n)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		describe: p,
	}
}

func kinds(s *settings) map[string]kind {
	resolver := fileresolve.NewResolver(s.BaseDir)
	return map[string]kind{
		"dependency": erase(dependency.NewParser(dependency.DefaultInstantiator())),
		"artifact":   erase(maven.NewParserFactory(maven.DefaultInstantiator(), resolver).Create()),
		"file":       erase(resolver.AsParser()),
	}
}

func lookupKind(s *settings, name string) (kind, error) {
	all := kinds(s)
	k, ok := all[name]
	if !ok {
		names := make([]string, 0, len(all))
		for n := range all {
			names = append(names, n)
		}
		slices.Sort(names)
		return kind{}, fmt.Errorf("unknown kind %q (want one of %s)", name, strings.Join(names, ", "))
	}
	return k, nil
}
