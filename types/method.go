package types

// Method is the HTTP verb used for an XRP-API call. Only GET and POST are valid.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodPost:
		return true
	default:
		return false
	}
}

func (m Method) String() string {
	return string(m)
}
