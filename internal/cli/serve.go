package cli

import (
	"github.com/codemend/codemend/internal/httpapi"
	"github.com/spf13/cobra"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the detection API over HTTP",
	Long: `Serve exposes the analysis engine as a REST API:

  POST /api/v1/analyze      {"code": "...", "language": "Python"}
  POST /api/v1/rectify      {"code": "...", "finding": {...}}
  POST /api/v1/rectify_all  {"code": "...", "findings": [...]}
  GET  /health`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :5000)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	eng, _, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	return httpapi.New(eng, addr).Run()
}
