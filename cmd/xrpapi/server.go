package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/xrpl-commons/xrpapi-go/rpc"
	"github.com/xrpl-commons/xrpapi-go/types"
)

type serverCall func(ctx context.Context, client *rpc.Client) (*types.Response, error)

func newServerCmd(use, short, long string, call serverCall) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client, err := newClient(ctx, cfg)
			if err != nil {
				return err
			}

			resp, err := call(ctx, client)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	addClientFlags(cmd)

	return cmd
}

func NewPingCmd() *cobra.Command {
	return newServerCmd("ping", "Confirm the XRP-API server is online",
		`Pings the XRP-API server.

Example:
  xrpapi ping --node http://localhost:3000
`,
		func(ctx context.Context, client *rpc.Client) (*types.Response, error) {
			return client.Ping(ctx)
		})
}

func NewServerInfoCmd() *cobra.Command {
	return newServerCmd("server-info", "Show the status of the XRP-API server and its rippled servers",
		`Retrieves information about the current status of the XRP-API server
and the rippled server(s) it is connected to.
`,
		func(ctx context.Context, client *rpc.Client) (*types.Response, error) {
			return client.GetServerInfo(ctx)
		})
}

func NewAPIDocsCmd() *cobra.Command {
	return newServerCmd("api-docs", "Print the API specification used by the server", "",
		func(ctx context.Context, client *rpc.Client) (*types.Response, error) {
			return client.GetAPIDocs(ctx)
		})
}
