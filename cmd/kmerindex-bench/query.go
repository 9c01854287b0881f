package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmerindex/spgkmer"
	"github.com/kmerindex/spgkmer/internal/obslog"
)

func newQueryCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "query <corpus-file> <pattern>",
		Short: "Load a corpus and run a single exact, prefix, or IUPAC query against it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args[0], args[1], mode)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "exact", "query mode: exact, prefix, or iupac")
	return cmd
}

func runQuery(corpusPath, pattern, mode string) error {
	keys, err := readKmerLines(corpusPath)
	if err != nil {
		return err
	}

	ix := newIndex()
	for i, s := range keys {
		k, err := spgkmer.NewKmer(s)
		if err != nil {
			obslog.Log.Warn().Err(err).Str("line", s).Msg("skipping invalid k-mer")
			continue
		}
		if err := ix.Insert(k, spgkmer.RowRef(i)); err != nil {
			return err
		}
	}

	var rows []spgkmer.RowRef
	switch mode {
	case "exact":
		q, err := spgkmer.NewKmer(pattern)
		if err != nil {
			return err
		}
		rows, err = ix.Lookup(q)
		if err != nil {
			return err
		}
	case "prefix":
		q, err := spgkmer.NewKmer(pattern)
		if err != nil {
			return err
		}
		rows, err = ix.PrefixSearch(q)
		if err != nil {
			return err
		}
	case "iupac":
		q, err := spgkmer.NewQKmer(pattern)
		if err != nil {
			return err
		}
		rows, err = ix.IupacSearch(q)
		if err != nil {
			return err
		}
	default:
		// 0 is not a strategy number any predicate.Predicate ever reports
		// (exact/prefix/iupac are 1/2/3), so it always reads as unsupported.
		return &spgkmer.UnsupportedStrategy{Strategy: 0}
	}

	fmt.Printf("%d match(es)\n", len(rows))
	for _, r := range rows {
		fmt.Println(r)
	}
	return nil
}
