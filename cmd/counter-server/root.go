package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "counter-server",
	Short: "Development server for the nojs counter",
	Long: `Serves the counter host page together with wasm_exec.js and main.wasm.
Build the WASM binary first:

  GOOS=js GOARCH=wasm go build -o build/main.wasm ./cmd/counter
  cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" build/`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		// fall back on default help if no args/flags are passed.
		cmd.HelpFunc()(cmd, args)
	},
}

var (
	logLevel  string
	logFormat string
)

func init() {
	// .env is optional; values already in the environment win.
	godotenv.Load()

	addRootFlags(RootCmd)
	addServeFlags(serveCmd)
	RootCmd.AddCommand(serveCmd)
}

func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr("COUNTER_LOG_LEVEL", "info"), "debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", envOr("COUNTER_LOG_FORMAT", "json"), "json|console")
}
