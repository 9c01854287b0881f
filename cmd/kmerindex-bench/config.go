package main

import (
	"github.com/spf13/viper"

	"github.com/kmerindex/spgkmer"
)

func indexConfig() spgkmer.Config {
	cfg := spgkmer.DefaultConfig()
	if n := viper.GetInt("max_leaves_per_page"); n > 0 {
		cfg.MaxLeavesPerPage = n
	}
	return cfg
}

func newIndex() *spgkmer.Index {
	return spgkmer.NewWithConfig(indexConfig())
}
