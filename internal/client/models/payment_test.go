package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionResult_OptionalResult(t *testing.T) {
	var withWallet ConversionResult
	require.NoError(t, json.Unmarshal([]byte(`{"status":"converted","result":{"walletAddress":"4Abc"}}`), &withWallet))
	require.NotNil(t, withWallet.Result)
	assert.Equal(t, "4Abc", withWallet.Result.WalletAddress)

	var bare ConversionResult
	require.NoError(t, json.Unmarshal([]byte(`{"status":"pending"}`), &bare))
	assert.Equal(t, "pending", bare.Status)
	assert.Nil(t, bare.Result)
}

func TestCardResult_KeepsNestedObjectsRaw(t *testing.T) {
	in := `{"status":"ok","card":{"last4":"1111","brand":"visa"},"monero_conversion":{"xmr":"0.1"}}`

	var r CardResult
	require.NoError(t, json.Unmarshal([]byte(in), &r))
	assert.Equal(t, "ok", r.Status)
	assert.JSONEq(t, `{"last4":"1111","brand":"visa"}`, string(r.Card))
	assert.JSONEq(t, `{"xmr":"0.1"}`, string(r.MoneroConversion))
}

func TestLoginResponse_TokenOptional(t *testing.T) {
	var r LoginResponse
	require.NoError(t, json.Unmarshal([]byte(`{}`), &r))
	assert.Empty(t, r.Token)
}
