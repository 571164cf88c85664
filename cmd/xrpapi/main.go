package main

import (
	"github.com/spf13/cobra"
	"github.com/streamingfast/cli"
	. "github.com/streamingfast/cli"
	"github.com/streamingfast/logging"
	"go.uber.org/zap"
)

// Injected at build time
var version = "<missing>"

var logger, tracer = logging.PackageLogger("xrpapi", "github.com/xrpl-commons/xrpapi-go")

func main() {
	logging.InstantiateLoggers(logging.WithDefaultLevel(zap.InfoLevel))

	Run(
		"xrpapi",
		"Command line client for the XRP-API server",
		Description(`
			xrpapi queries an XRP-API server, the HTTP service fronting the
			XRP Ledger, and prints every answer as a JSON envelope carrying
			a "status" field ("ok" or "error").

			Unless --skip-connectivity-check is given, each command first
			checks that the internet is reachable and that the server
			answers ping.

			Settings are read from --config (any format viper reads),
			then XRPAPI_* environment variables (e.g. XRPAPI_API_KEY),
			then command flags.

			Default server: http://localhost:3000 (API version 1)
		`),

		ConfigureVersion(version),
		ConfigureViper("XRPAPI"),

		CobraCmd(NewPingCmd()),
		CobraCmd(NewServerInfoCmd()),
		CobraCmd(NewAPIDocsCmd()),

		Group("account", "Account queries",
			CobraCmd(NewAccountInfoCmd()),
			CobraCmd(NewAccountTransactionsCmd()),
			CobraCmd(NewAccountSettingsCmd()),
		),

		CobraCmd(NewTxCmd()),
		CobraCmd(NewPayCmd()),

		OnCommandErrorLogAndExit(logger),
	)
}

func CobraCmd(cmd *cobra.Command) cli.CommandOption {
	return cli.CommandOptionFunc(func(parent *cobra.Command) {
		parent.AddCommand(cmd)
	})
}
