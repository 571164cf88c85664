package types

// CurrencyXRP is the only currency the payment endpoint is used with
const CurrencyXRP = "XRP"

// Amount represents a currency amount as sent to the payments endpoint
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

func NewXRPAmount(value string) Amount {
	return Amount{Value: value, Currency: CurrencyXRP}
}

// Payment is the "payment" object of a payment submission
type Payment struct {
	SourceAddress      string `json:"source_address"`
	SourceAmount       Amount `json:"source_amount"`
	DestinationAddress string `json:"destination_address"`
	DestinationAmount  Amount `json:"destination_amount"`
	SourceTag          string `json:"source_tag,omitempty"`
	DestinationTag     string `json:"destination_tag,omitempty"`
	// Older XRP-API deployments read the destination tag from this misspelled key
	LegacyDestinationTag string `json:"desination_tag,omitempty"`
}

// PaymentRequest represents the body of a POST to the payments endpoint
type PaymentRequest struct {
	Payment Payment `json:"payment"`
	Submit  bool    `json:"submit"`
}

type PaymentOptions struct {
	SourceTag      string
	DestinationTag string
	Submit         bool
	// LegacyDestinationTagKey writes the destination tag under "desination_tag"
	LegacyDestinationTagKey bool
}

// NewPaymentRequest builds an XRP payment where source and destination amounts are equal.
// Empty tags are omitted.
func NewPaymentRequest(sourceAddress, destinationAddress, amount string, opts PaymentOptions) *PaymentRequest {
	payment := Payment{
		SourceAddress:      sourceAddress,
		SourceAmount:       NewXRPAmount(amount),
		DestinationAddress: destinationAddress,
		DestinationAmount:  NewXRPAmount(amount),
		SourceTag:          opts.SourceTag,
	}

	if opts.DestinationTag != "" {
		if opts.LegacyDestinationTagKey {
			payment.LegacyDestinationTag = opts.DestinationTag
		} else {
			payment.DestinationTag = opts.DestinationTag
		}
	}

	return &PaymentRequest{
		Payment: payment,
		Submit:  opts.Submit,
	}
}
