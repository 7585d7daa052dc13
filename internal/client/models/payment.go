package models

import "encoding/json"

// MessageResponse is returned by the generator-style endpoints
// (/generate_ach, /receive_bank_transfer).
type MessageResponse struct {
	Message string `json:"message"`
}

// CardResult is the /process_card response. Card and MoneroConversion are
// opaque to the client and kept raw so they render verbatim.
type CardResult struct {
	Card             json.RawMessage `json:"card"`
	MoneroConversion json.RawMessage `json:"monero_conversion"`
	Status           string          `json:"status"`
}

// ConversionResult is the /convert_to_crypto response.
type ConversionResult struct {
	Status string            `json:"status"`
	Result *ConversionDetail `json:"result,omitempty"`
}

type ConversionDetail struct {
	WalletAddress string `json:"walletAddress"`
}
