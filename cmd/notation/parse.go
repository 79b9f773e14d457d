package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/reoring/notation"
	"github.com/reoring/notation/source"
)

type result struct {
	File  string `json:"file"`
	Index int    `json:"index"`
	Value any    `json:"value,omitempty"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
}

func newParseCmd(s *settings) *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Convert every notation in JSON, YAML or TOML files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := lookupKind(s, kindName)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := notation.LoggerFrom(ctx)

			perFile := make([][]result, len(args))
			g, gctx := errgroup.WithContext(ctx)
			for i, path := range args {
				g.Go(func() error {
					doc, err := source.ReadFile(path)
					if err != nil {
						return err
					}
					ns := source.Notations(doc)
					logger.DebugContext(gctx, "decoded notations", "file", path, "count", len(ns))

					rs := make([]result, len(ns))
					for j, n := range ns {
						rs[j] = result{File: path, Index: j}
						v, err := k.parse(gctx, n)
						if err != nil {
							rs[j].Code = notation.Code(err)
							rs[j].Error = err.Error()
							continue
						}
						rs[j].Value = v
					}
					perFile[i] = rs
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			var out []result
			failed := 0
			for _, rs := range perFile {
				for _, r := range rs {
					if r.Error != "" {
						failed++
					}
					out = append(out, r)
				}
			}
			b, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			if failed > 0 {
				return fmt.Errorf("%d of %d notations could not be converted", failed, len(out))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", "dependency", "target kind (dependency, artifact, file)")
	return cmd
}

func newDescribeCmd(s *settings) *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "List the notations accepted for a kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := lookupKind(s, kindName)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), notation.Describe(k.describe).Render())
			return nil
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", "dependency", "target kind (dependency, artifact, file)")
	return cmd
}
