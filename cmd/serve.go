package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/casefile/internal/logging"
	mcpserver "github.com/ziadkadry99/casefile/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the case-study search tools to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, err := loadSite(cfg)
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		logging.Component("mcp").WithField("pages", len(s.Pages)).Info("casefile MCP server started on stdio")

		return mcpserver.NewServer(s).Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
