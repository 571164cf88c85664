package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xrpl-commons/xrpapi-go/types"
)

func TestPayAmount(t *testing.T) {
	xrp, err := payAmount("12.5", "")
	require.NoError(t, err)
	assert.Equal(t, 12.5, xrp)

	xrp, err = payAmount("", "250000")
	require.NoError(t, err)
	assert.Equal(t, 0.25, xrp)

	_, err = payAmount("1", "1000000")
	require.Error(t, err)

	_, err = payAmount("", "")
	require.Error(t, err)

	_, err = payAmount("", "1.5")
	require.Error(t, err)

	for _, value := range []string{"NaN", "Inf", "+Inf"} {
		_, err = payAmount(value, "")
		require.Error(t, err, value)
	}
}

func TestValidateAddress(t *testing.T) {
	require.NoError(t, validateAddress("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"))
	require.Error(t, validateAddress("not-an-address"))
	require.Error(t, validateAddress(""))
}

func TestPrintResponse(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, printResponse(cmd, types.NewNoContentResponse()))
	assert.JSONEq(t, `{"status":"ok","message":"No content"}`, out.String())

	out.Reset()
	resp := types.NewResponse(types.StatusError, map[string]any{
		"message": "Invalid request",
		"errors":  []any{map[string]any{"path": "payment.source_address", "message": "is required"}},
	})
	err := printResponse(cmd, resp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errCallFailed))
	assert.Contains(t, err.Error(), "Invalid request: payment.source_address: is required")

	out.Reset()
	err = printResponse(cmd, types.NewErrorResponse("connection refused"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
