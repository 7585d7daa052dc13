package forms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/payforms/internal/client/api"
	"github.com/dmitrijs2005/payforms/internal/client/models"
)

// RenderJSON shows the response verbatim, indented for the terminal. A body
// that is not JSON is a malformed response.
func RenderJSON(raw []byte) (string, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, bytes.TrimSpace(raw), "", "  "); err != nil {
		return "", fmt.Errorf("%w: %v", api.ErrMalformedResponse, err)
	}
	return out.String(), nil
}

// RenderCard checks the body is a card result object and shows it verbatim.
func RenderCard(raw []byte) (string, error) {
	var r models.CardResult
	if err := json.Unmarshal(raw, &r); err != nil {
		return "", fmt.Errorf("%w: %v", api.ErrMalformedResponse, err)
	}
	return RenderJSON(raw)
}

// RenderMessage shows the message field of the response.
func RenderMessage(raw []byte) (string, error) {
	var r models.MessageResponse
	if err := json.Unmarshal(raw, &r); err != nil {
		return "", fmt.Errorf("%w: %v", api.ErrMalformedResponse, err)
	}
	return r.Message, nil
}

// RenderConversion shows the conversion status and, when present, the
// wallet address.
func RenderConversion(raw []byte) (string, error) {
	var r models.ConversionResult
	if err := json.Unmarshal(raw, &r); err != nil {
		return "", fmt.Errorf("%w: %v", api.ErrMalformedResponse, err)
	}

	var b strings.Builder
	b.WriteString(r.Status)
	if r.Result != nil && r.Result.WalletAddress != "" {
		fmt.Fprintf(&b, "\nWallet address: %s", r.Result.WalletAddress)
	}
	return b.String(), nil
}

// RenderContent shows an opaque content string.
func RenderContent(raw []byte) (string, error) {
	return api.DecodeContent(raw), nil
}

// Static returns a renderer that ignores the body.
func Static(text string) func([]byte) (string, error) {
	return func([]byte) (string, error) {
		return text, nil
	}
}
