package cli

import (
	"github.com/codemend/codemend/internal/server"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: `Mcp runs the Model Context Protocol server over the stdio transport,
exposing analyze_code, rectify_bug, and rectify_all tools plus the rule
catalog resource. Log output goes to stderr; stdout carries JSON-RPC.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	eng, catalog, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(eng, catalog, cfg)
	if err != nil {
		return err
	}
	return srv.Run(cmd.Context())
}
