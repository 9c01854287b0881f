package main

import (
	"bufio"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmerindex/spgkmer"
	"github.com/kmerindex/spgkmer/internal/obslog"
)

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Insert one k-mer per line from a file and report throughput",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(args[0])
		},
	}
}

func runLoad(path string) error {
	keys, err := readKmerLines(path)
	if err != nil {
		return err
	}

	ix := newIndex()
	start := time.Now()
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
	elapsed := time.Since(start)

	obslog.Log.Info().
		Int("keys", len(keys)).
		Dur("elapsed", elapsed).
		Float64("keys_per_sec", float64(len(keys))/elapsed.Seconds()).
		Msg("load complete")
	return nil
}

func readKmerLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
