package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/casefile/internal/config"
	"github.com/ziadkadry99/casefile/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "casefile",
	Short: "Searchable case-study site about the life and trial of O.J. Simpson",
	Long: `Casefile serves and exports an educational case-study website. Every page
has a search box that hides the sections whose digest does not contain the
query and highlights each occurrence of it in the sections that remain.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
