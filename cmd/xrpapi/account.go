package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/streamingfast/cli/sflags"
	"github.com/xrpl-commons/xrpapi-go/rpc"
	"github.com/xrpl-commons/xrpapi-go/types"
)

type accountCall func(ctx context.Context, client *rpc.Client, address string, ledgerIndex int64) (*types.Response, error)

func newAccountCmd(use, short, long string, call accountCall) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <address>",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := args[0]
			if err := validateAddress(address); err != nil {
				return err
			}
			ledgerIndex := int64(sflags.MustGetInt(cmd, "ledger-index"))

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client, err := newClient(ctx, cfg)
			if err != nil {
				return err
			}

			resp, err := call(ctx, client, address, ledgerIndex)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}

	addClientFlags(cmd)
	cmd.Flags().Int("ledger-index", int(rpc.LedgerCurrent), "Ledger index to query (-1 = current ledger)")

	return cmd
}

func NewAccountInfoCmd() *cobra.Command {
	return newAccountCmd("info", "Show settings, activity and XRP balance of an account",
		`Gets information about an account in the XRP Ledger, including the
sequence number of the next valid transaction for this account.

By default the data comes from the current (in-progress) ledger, which may
change before validation.

Examples:
  xrpapi account info rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh
  xrpapi account info rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh --ledger-index 32570
`,
		func(ctx context.Context, client *rpc.Client, address string, ledgerIndex int64) (*types.Response, error) {
			return client.GetAccountInfo(ctx, address, ledgerIndex)
		})
}

func NewAccountTransactionsCmd() *cobra.Command {
	return newAccountCmd("transactions", "List transactions that affected an account", "",
		func(ctx context.Context, client *rpc.Client, address string, ledgerIndex int64) (*types.Response, error) {
			return client.GetAccountTransactions(ctx, address, ledgerIndex)
		})
}

func NewAccountSettingsCmd() *cobra.Command {
	return newAccountCmd("settings", "Show the user-modifiable settings of an account", "",
		func(ctx context.Context, client *rpc.Client, address string, ledgerIndex int64) (*types.Response, error) {
			return client.GetAccountSettings(ctx, address, ledgerIndex)
		})
}
