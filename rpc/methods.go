package rpc

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xrpl-commons/xrpapi-go/types"
	"github.com/xrpl-commons/xrpapi-go/utils"
)

// LedgerCurrent selects the server default ledger (the current, in-progress one)
const LedgerCurrent int64 = -1

func ledgerHeaders(ledgerIndex int64) map[string]string {
	if ledgerIndex == LedgerCurrent {
		return nil
	}
	return map[string]string{"ledger_index": strconv.FormatInt(ledgerIndex, 10)}
}

// GetAccountTransactions returns a selection of transactions that affected the account
func (c *Client) GetAccountTransactions(ctx context.Context, address string, ledgerIndex int64) (*types.Response, error) {
	return c.Call(ctx, types.MethodGet, []string{"accounts", address, "transactions"}, nil, ledgerHeaders(ledgerIndex))
}

// GetAccountInfo returns the settings, activity, XRP balance and next
// sequence number of an account. With LedgerCurrent the data comes from the
// in-progress ledger and may change before validation.
func (c *Client) GetAccountInfo(ctx context.Context, address string, ledgerIndex int64) (*types.Response, error) {
	return c.Call(ctx, types.MethodGet, []string{"accounts", address, "info"}, nil, ledgerHeaders(ledgerIndex))
}

// GetAccountSettings returns the user-modifiable settings of an account
func (c *Client) GetAccountSettings(ctx context.Context, address string, ledgerIndex int64) (*types.Response, error) {
	return c.Call(ctx, types.MethodGet, []string{"accounts", address, "settings"}, nil, ledgerHeaders(ledgerIndex))
}

// GetTransaction looks up a transaction. The server only answers from validated ledgers by default.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*types.Response, error) {
	return c.Call(ctx, types.MethodGet, []string{"transactions", transactionID}, nil, nil)
}

type PaymentParams struct {
	SourceAddress      string
	DestinationAddress string
	// Tags are sent only when non-empty
	SourceTag      string
	DestinationTag string
	// Amount in XRP
	Amount float64
	APIKey string
	// SkipSubmit asks the server to sign the payment without submitting it
	SkipSubmit bool
}

// SubmitPayment signs a payment and submits it to the XRP Ledger. The source
// account must be one the XRP-API server holds the secret of.
func (c *Client) SubmitPayment(ctx context.Context, params PaymentParams) (*types.Response, error) {
	if _, err := utils.XRPToDrops(params.Amount); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, err)
	}

	payload := types.NewPaymentRequest(
		params.SourceAddress,
		params.DestinationAddress,
		utils.FormatXRP(params.Amount),
		types.PaymentOptions{
			SourceTag:               params.SourceTag,
			DestinationTag:          params.DestinationTag,
			Submit:                  !params.SkipSubmit,
			LegacyDestinationTagKey: c.config.LegacyDestinationTagKey,
		},
	)

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + params.APIKey,
	}

	return c.Call(ctx, types.MethodPost, []string{"payments"}, payload, headers)
}

// Ping confirms the server is online
func (c *Client) Ping(ctx context.Context) (*types.Response, error) {
	return c.Call(ctx, types.MethodGet, []string{"ping"}, nil, nil)
}

// GetServerInfo returns the status of the XRP-API server and of the rippled servers it is connected to
func (c *Client) GetServerInfo(ctx context.Context) (*types.Response, error) {
	return c.Call(ctx, types.MethodGet, []string{"servers", "info"}, nil, nil)
}

// GetAPIDocs returns the API specification the server uses
func (c *Client) GetAPIDocs(ctx context.Context) (*types.Response, error) {
	return c.Call(ctx, types.MethodGet, []string{"apiDocs"}, nil, nil)
}
