package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/streamingfast/cli/sflags"
	"github.com/xrpl-commons/xrpapi-go/rpc"
	"github.com/xrpl-commons/xrpapi-go/utils"
	"go.uber.org/zap"
)

func NewTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx <transaction-id>",
		Short: "Look up the status and details of a transaction",
		Long: `Looks up a transaction by its identifying hash. By default only ledger
versions validated by consensus are searched.
`,
		Args: cobra.ExactArgs(1),
		RunE: runTx,
	}
	addClientFlags(cmd)

	return cmd
}

func runTx(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}

	resp, err := client.GetTransaction(ctx, args[0])
	if err != nil {
		return err
	}
	return printResponse(cmd, resp)
}

func NewPayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Sign an XRP payment and submit it to the XRP Ledger",
		Long: `Signs a payment transaction and submits it to the XRP Ledger network.
The source account must match an account address and secret the XRP-API
server is configured with. The API key is sent as a bearer token; prefer
XRPAPI_API_KEY or the config file over --api-key.

Examples:
  xrpapi pay --from rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh \
    --to rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe --amount 12.5

  xrpapi pay --from rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh \
    --to rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe --drops 250000 --destination-tag 7 --no-submit
`,
		Args: cobra.NoArgs,
		RunE: runPay,
	}

	addClientFlags(cmd)
	cmd.Flags().String("from", "", "Source account address")
	cmd.Flags().String("to", "", "Destination account address")
	cmd.Flags().String("amount", "", "Amount in XRP")
	cmd.Flags().String("drops", "", "Amount in drops (exclusive with --amount)")
	cmd.Flags().String("source-tag", "", "Source tag")
	cmd.Flags().String("destination-tag", "", "Destination tag")
	cmd.Flags().String("api-key", "", "XRP-API key")
	cmd.Flags().Bool("no-submit", false, "Only sign the payment, do not submit it")
	cmd.Flags().Bool("legacy-destination-tag-key", false, `Send the destination tag as "desination_tag"`)

	return cmd
}

func runPay(cmd *cobra.Command, args []string) error {
	source := sflags.MustGetString(cmd, "from")
	destination := sflags.MustGetString(cmd, "to")
	for _, address := range []string{source, destination} {
		if err := validateAddress(address); err != nil {
			return err
		}
	}

	amount, err := payAmount(sflags.MustGetString(cmd, "amount"), sflags.MustGetString(cmd, "drops"))
	if err != nil {
		return err
	}

	drops, err := utils.XRPToDrops(amount)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = sflags.MustGetString(cmd, "api-key")
	}
	if cmd.Flags().Changed("legacy-destination-tag-key") {
		cfg.LegacyDestinationTagKey = sflags.MustGetBool(cmd, "legacy-destination-tag-key")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("an API key is required, set --api-key or XRPAPI_API_KEY")
	}

	ctx := cmd.Context()
	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}

	logger.Info("submitting payment",
		zap.String("source", source),
		zap.String("destination", destination),
		zap.String("amount_xrp", utils.FormatXRP(amount)),
		zap.Uint64("amount_drops", drops),
		zap.Bool("submit", !sflags.MustGetBool(cmd, "no-submit")))

	resp, err := client.SubmitPayment(ctx, rpc.PaymentParams{
		SourceAddress:      source,
		DestinationAddress: destination,
		SourceTag:          sflags.MustGetString(cmd, "source-tag"),
		DestinationTag:     sflags.MustGetString(cmd, "destination-tag"),
		Amount:             amount,
		APIKey:             cfg.APIKey,
		SkipSubmit:         sflags.MustGetBool(cmd, "no-submit"),
	})
	if err != nil {
		return err
	}
	return printResponse(cmd, resp)
}

// payAmount returns the XRP amount given either in XRP or in drops
func payAmount(xrp, drops string) (float64, error) {
	switch {
	case xrp != "" && drops != "":
		return 0, fmt.Errorf("--amount and --drops are mutually exclusive")
	case xrp != "":
		return utils.ParseXRP(xrp)
	case drops != "":
		d, err := utils.ParseDrops(drops)
		if err != nil {
			return 0, fmt.Errorf("invalid drops amount %q: %w", drops, err)
		}
		return utils.DropsToXRP(d), nil
	default:
		return 0, fmt.Errorf("one of --amount or --drops is required")
	}
}
