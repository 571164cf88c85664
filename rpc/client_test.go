package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xrpl-commons/xrpapi-go/types"
	"go.uber.org/zap"
)

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// fakeServer is an XRP-API stand-in recording every request it receives
type fakeServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeServer(t *testing.T, handler http.HandlerFunc) *fakeServer {
	t.Helper()

	fs := &fakeServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fs.mu.Lock()
		fs.requests = append(fs.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   body,
		})
		fs.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(fs.Close)

	return fs
}

func (fs *fakeServer) Requests() []recordedRequest {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]recordedRequest(nil), fs.requests...)
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func newTestClient(t *testing.T, node string, opts ...ConfigOpt) *Client {
	t.Helper()

	opts = append([]ConfigOpt{WithoutConnectivityCheck()}, opts...)
	client, err := NewClient(context.Background(), NewClientConfig(node, opts...), zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestClientURL(t *testing.T) {
	client := newTestClient(t, "http://localhost:3000", WithAPIVersion(2))

	assert.Equal(t, "http://localhost:3000/v2/accounts/rAddr/info", client.URL("accounts", "rAddr", "info"))
	assert.Equal(t, "http://localhost:3000/v2/ping", client.URL("ping"))
}

func TestCallSuccessMergesStatus(t *testing.T) {
	server := newFakeServer(t, jsonHandler(http.StatusOK, `{"status":"weird","ledger_index":1234}`))
	client := newTestClient(t, server.URL)

	resp, err := client.Call(context.Background(), types.MethodGet, []string{"servers", "info"}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, types.StatusOK, resp.Status)
	assert.Equal(t, float64(1234), resp.Fields["ledger_index"])

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodGet, requests[0].Method)
	assert.Equal(t, "/v1/servers/info", requests[0].Path)
}

func TestCallHTTPErrorStatus(t *testing.T) {
	server := newFakeServer(t, jsonHandler(http.StatusBadRequest, `{"message":"Invalid request","errors":[{"name":"X"}]}`))
	client := newTestClient(t, server.URL)

	resp, err := client.Call(context.Background(), types.MethodGet, []string{"ping"}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, types.StatusError, resp.Status)
	assert.Equal(t, "Invalid request", resp.GetString("message"))
}

func TestCallEmptyBody(t *testing.T) {
	server := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	client := newTestClient(t, server.URL)

	resp, err := client.Call(context.Background(), types.MethodGet, []string{"ping"}, nil, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","message":"No content"}`, string(raw))
}

func TestCallEmptyBodyOnServerError(t *testing.T) {
	server := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client := newTestClient(t, server.URL)

	resp, err := client.Call(context.Background(), types.MethodGet, []string{"ping"}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, types.StatusOK, resp.Status)
	assert.Equal(t, types.NoContentMessage, resp.GetString("message"))
}

func TestCallWhitespaceBody(t *testing.T) {
	server := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, " \n")
	})
	client := newTestClient(t, server.URL)

	resp, err := client.Call(context.Background(), types.MethodGet, []string{"ping"}, nil, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","error":"JSONDecodeError"}`, string(raw))
}

func TestCallInvalidJSON(t *testing.T) {
	server := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>not json</html>")
	})
	client := newTestClient(t, server.URL)

	resp, err := client.Call(context.Background(), types.MethodGet, []string{"ping"}, nil, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","error":"JSONDecodeError"}`, string(raw))
}

func TestCallNonObjectBody(t *testing.T) {
	server := newFakeServer(t, jsonHandler(http.StatusOK, `["a","b"]`))
	client := newTestClient(t, server.URL)

	resp, err := client.Call(context.Background(), types.MethodGet, []string{"apiDocs"}, nil, nil)
	require.NoError(t, err)

	assert.True(t, resp.OK())
	assert.Equal(t, []any{"a", "b"}, resp.Fields["data"])
}

func TestCallInvalidMethodSkipsNetwork(t *testing.T) {
	server := newFakeServer(t, jsonHandler(http.StatusOK, `{}`))
	client := newTestClient(t, server.URL)

	resp, err := client.Call(context.Background(), types.Method("PUT"), []string{"ping"}, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMethod))
	assert.Nil(t, resp)
	assert.Empty(t, server.Requests())
}

func TestCallTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	node := server.URL
	server.Close()

	client := newTestClient(t, node)

	resp, err := client.Call(context.Background(), types.MethodGet, []string{"ping"}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, types.StatusError, resp.Status)
	assert.NotEmpty(t, resp.GetString("error"))
}

func TestCallSendsPayloadAndHeaders(t *testing.T) {
	server := newFakeServer(t, jsonHandler(http.StatusOK, `{"accepted":true}`))
	client := newTestClient(t, server.URL)

	payload := map[string]any{"submit": false}
	resp, err := client.Call(context.Background(), types.MethodPost, []string{"payments"}, payload, map[string]string{"X-Trace": "abc"})
	require.NoError(t, err)
	assert.True(t, resp.OK())

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, "abc", requests[0].Header.Get("X-Trace"))
	assert.Equal(t, "application/json", requests[0].Header.Get("Content-Type"))
	assert.JSONEq(t, `{"submit":false}`, string(requests[0].Body))
}

func TestNewClientNoInternet(t *testing.T) {
	probe := httptest.NewServer(http.NotFoundHandler())
	probeURL := probe.URL
	probe.Close()

	api := newFakeServer(t, jsonHandler(http.StatusOK, `{"message":"pong"}`))

	client, err := NewClient(context.Background(), NewClientConfig(api.URL, WithProbe(probeURL, time.Second)), zap.NewNop())
	require.Error(t, err)
	assert.Nil(t, client)

	var connErr *ConnectivityError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, "No Internet connection available", connErr.Error())
	assert.True(t, errors.Is(err, ErrNoInternet))
	assert.Empty(t, api.Requests(), "ping must not be attempted")
}

func TestNewClientServerNotRunning(t *testing.T) {
	probe := newFakeServer(t, jsonHandler(http.StatusOK, `{}`))
	api := newFakeServer(t, jsonHandler(http.StatusServiceUnavailable, `{"error":"rippled unavailable"}`))

	client, err := NewClient(context.Background(), NewClientConfig(api.URL, WithProbe(probe.URL, time.Second)), zap.NewNop())
	require.Error(t, err)
	assert.Nil(t, client)

	assert.True(t, errors.Is(err, ErrServerNotRunning))
	assert.Equal(t, "Server is not running.\nrippled unavailable", err.Error())

	requests := api.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "/v1/ping", requests[0].Path)
}

func TestNewClientReady(t *testing.T) {
	probe := newFakeServer(t, jsonHandler(http.StatusOK, `{}`))
	api := newFakeServer(t, jsonHandler(http.StatusOK, `{"message":"pong"}`))

	client, err := NewClient(context.Background(), NewClientConfig(api.URL, WithProbe(probe.URL, time.Second)), zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, client)

	assert.Len(t, probe.Requests(), 1)
	assert.Len(t, api.Requests(), 1)
	assert.Equal(t, api.URL, client.Config().Node)
}
