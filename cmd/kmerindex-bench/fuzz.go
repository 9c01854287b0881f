package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/kmerindex/spgkmer"
)

var nucleotides = [4]byte{'A', 'C', 'G', 'T'}

func newFuzzCmd() *cobra.Command {
	var count, length int

	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Insert random k-mers and verify every one round-trips through Lookup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFuzz(count, length)
		},
	}
	cmd.Flags().IntVar(&count, "count", 10000, "number of random k-mers to insert")
	cmd.Flags().IntVar(&length, "len", 21, "length of each generated k-mer")
	return cmd
}

func runFuzz(count, length int) error {
	if length <= 0 || length > spgkmer.MaxKeyLen {
		return fmt.Errorf("len must be in (0, %d], got %d", spgkmer.MaxKeyLen, length)
	}

	ix := newIndex()
	keys := make([]string, count)
	for i := range keys {
		keys[i] = randomKmer(length)
		k, err := spgkmer.NewKmer(keys[i])
		if err != nil {
			return err
		}
		if err := ix.Insert(k, spgkmer.RowRef(i)); err != nil {
			return err
		}
	}

	missing := 0
	for i, s := range keys {
		k, _ := spgkmer.NewKmer(s)
		got, err := ix.Lookup(k)
		if err != nil {
			return err
		}
		found := false
		for _, r := range got {
			if r == spgkmer.RowRef(i) {
				found = true
				break
			}
		}
		if !found {
			missing++
		}
	}

	fmt.Printf("inserted %d, round-trip failures %d\n", count, missing)
	if missing > 0 {
		return fmt.Errorf("%d of %d keys failed to round-trip", missing, count)
	}
	return nil
}

func randomKmer(length int) string {
	bs := make([]byte, length)
	for i := range bs {
		bs[i] = nucleotides[rand.IntN(len(nucleotides))]
	}
	return string(bs)
}
