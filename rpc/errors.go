package rpc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xrpl-commons/xrpapi-go/types"
)

var (
	// ErrInvalidMethod is returned by Call for any method other than GET or POST
	ErrInvalidMethod = errors.New("bad request method")
	// ErrInvalidAmount is returned by SubmitPayment for a negative or non-finite amount
	ErrInvalidAmount = errors.New("invalid payment amount")
	// ErrMissingErrors is returned by ErrorMessage when an error envelope has no "errors" list
	ErrMissingErrors = errors.New(`error response has no "errors" entries`)

	ErrNoInternet       = errors.New("no internet connection available")
	ErrServerNotRunning = errors.New("XRP-API server is not running")
)

// ConnectivityError is returned by NewClient when the client cannot be used
type ConnectivityError struct {
	Message string
	err     error
}

func (e *ConnectivityError) Error() string {
	return e.Message
}

func (e *ConnectivityError) Unwrap() error {
	return e.err
}

func newNoInternetError() *ConnectivityError {
	return &ConnectivityError{
		Message: "No Internet connection available",
		err:     ErrNoInternet,
	}
}

func newServerNotRunningError(detail string) *ConnectivityError {
	return &ConnectivityError{
		Message: "Server is not running.\n" + detail,
		err:     ErrServerNotRunning,
	}
}

// ErrorMessage reduces an error envelope to a single line such as
// "message: path: name: detail". It returns "" for an ok envelope.
// Double quotes are replaced by single quotes and duplicates are dropped,
// keeping the first occurrence.
func ErrorMessage(resp *types.Response) (string, error) {
	if resp == nil {
		return "", ErrMissingErrors
	}
	if resp.OK() {
		return "", nil
	}

	first, err := firstError(resp)
	if err != nil {
		return "", err
	}

	var messages []string
	if v, ok := resp.Get("message"); ok {
		messages = append(messages, fmt.Sprint(v))
	}
	for _, key := range []string{"path", "name", "message"} {
		if v, ok := first[key]; ok {
			messages = append(messages, fmt.Sprint(v))
		}
	}

	seen := make(map[string]struct{}, len(messages))
	unique := make([]string, 0, len(messages))
	for _, m := range messages {
		m = strings.ReplaceAll(m, `"`, `'`)
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		unique = append(unique, m)
	}

	return strings.Join(unique, ": "), nil
}

func firstError(resp *types.Response) (map[string]any, error) {
	raw, ok := resp.Get("errors")
	if !ok {
		return nil, ErrMissingErrors
	}

	list, ok := raw.([]any)
	if !ok || len(list) == 0 {
		return nil, ErrMissingErrors
	}

	first, ok := list[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: first entry is %T", ErrMissingErrors, list[0])
	}

	return first, nil
}
