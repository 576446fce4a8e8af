package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/casefile/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize casefile configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose the content source, output directory and search mode, and writes a .casefile.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.RunWizard(cfgFile); err != nil {
			return err
		}
		fmt.Println("Next: run `casefile server` to start the live site or `casefile build` to export it.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
