package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/casefile/internal/progress"
	"github.com/ziadkadry99/casefile/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static HTML",
	Long: `Renders every page, the about page, the stylesheet, the script and the
search index into the output directory. The exported pages filter and
highlight in the browser without a server.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from the config)")
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after building")
	buildCmd.Flags().Int("port", 0, "port for the local file server (defaults to port from the config)")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := loadSite(cfg)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	generator := site.NewGenerator(s, outputDir, renderOptions(cfg))
	generator.AssetDir = cfg.AssetDir
	generator.Reporter = progress.NewReporter("Rendering pages")
	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)

	serve, _ := cmd.Flags().GetBool("serve")
	if !serve {
		return nil
	}
	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Port
	}
	open, _ := cmd.Flags().GetBool("open")
	if err := site.ServeDir(outputDir, port, open); err != nil {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}
