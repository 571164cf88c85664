package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	addresscodec "github.com/Peersyst/xrpl-go/address-codec"
	"github.com/spf13/cobra"
	"github.com/streamingfast/cli/sflags"
	"github.com/xrpl-commons/xrpapi-go/config"
	"github.com/xrpl-commons/xrpapi-go/rpc"
	"github.com/xrpl-commons/xrpapi-go/types"
	"go.uber.org/zap"
)

var errCallFailed = errors.New("XRP-API call failed")

// addClientFlags registers the flags every command uses to reach the server
func addClientFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to a configuration file")
	cmd.Flags().String("node", rpc.DefaultNode, "XRP-API server base URL")
	cmd.Flags().Int("api-version", rpc.DefaultAPIVersion, "XRP-API version")
	cmd.Flags().String("probe-url", rpc.DefaultProbeURL, "URL used to check internet reachability")
	cmd.Flags().Bool("skip-connectivity-check", false, "Do not probe the internet nor ping the server before the call")
}

// loadConfig merges the configuration file and environment with the flags explicitly set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(sflags.MustGetString(cmd, "config"))
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("node") {
		cfg.Node = sflags.MustGetString(cmd, "node")
	}
	if flags.Changed("api-version") {
		cfg.APIVersion = sflags.MustGetInt(cmd, "api-version")
	}
	if flags.Changed("probe-url") {
		cfg.ProbeURL = sflags.MustGetString(cmd, "probe-url")
	}
	if flags.Changed("skip-connectivity-check") {
		cfg.SkipConnectivityCheck = sflags.MustGetBool(cmd, "skip-connectivity-check")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newClient(ctx context.Context, cfg *config.Config) (*rpc.Client, error) {
	logger.Debug("connecting to XRP-API server",
		zap.String("node", cfg.Node),
		zap.Int("api_version", cfg.APIVersion),
		zap.Bool("skip_connectivity_check", cfg.SkipConnectivityCheck))

	client, err := rpc.NewClient(ctx, cfg.ClientConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

func validateAddress(address string) error {
	if !addresscodec.IsValidClassicAddress(address) {
		return fmt.Errorf("invalid classic XRPL address %q", address)
	}
	return nil
}

// printResponse writes the envelope as indented JSON and turns an error
// envelope into a command error carrying its simplified message
func printResponse(cmd *cobra.Command, resp *types.Response) error {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if resp.OK() {
		return nil
	}

	msg, err := rpc.ErrorMessage(resp)
	if err != nil {
		if tracer.Enabled() {
			logger.Debug("response has no errors list", zap.Error(err))
		}
		msg = resp.Error()
	}
	if msg == "" {
		return errCallFailed
	}
	return fmt.Errorf("%w: %s", errCallFailed, msg)
}
