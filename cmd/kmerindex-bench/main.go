// Command kmerindex-bench drives the spgkmer index from the command line:
// loading a k-mer corpus, running queries against it, and fuzzing it with
// randomly generated reads, for ad-hoc benchmarking and manual poking.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kmerindex/spgkmer/internal/obslog"
)

var (
	cfgFile   string
	verbose   bool
	quiet     bool
	maxLeaves int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kmerindex-bench",
		Short: "Load, query, and fuzz a spgkmer radix trie index",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case quiet:
				zerolog.SetGlobalLevel(zerolog.ErrorLevel)
			case verbose:
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			default:
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return initConfig()
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./kmerindex-bench.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "error-level logging only")
	root.PersistentFlags().IntVar(&maxLeaves, "max-leaves-per-page", 0, "leaf page capacity before a split (0 = library default)")
	_ = viper.BindPFlag("max_leaves_per_page", root.PersistentFlags().Lookup("max-leaves-per-page"))

	root.AddCommand(newLoadCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newFuzzCmd())
	return root
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("kmerindex-bench")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("KMERINDEX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return err
		}
		obslog.Log.Debug().Msg("no config file found, using flags and defaults")
	}
	return nil
}
