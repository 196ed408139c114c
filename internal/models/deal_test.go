package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountAcceptsNumberAndString(t *testing.T) {
	var fromNumber, fromString Deal

	require.NoError(t, json.Unmarshal(
		[]byte(`{"deal_type":"sale","deal_date":"2026-03-14","amount":100000.50}`), &fromNumber))
	require.NoError(t, json.Unmarshal(
		[]byte(`{"deal_type":"sale","deal_date":"2026-03-14","amount":"100000.50"}`), &fromString))

	assert.Equal(t, Amount("100000.50"), fromNumber.Amount)
	assert.Equal(t, fromNumber.Amount, fromString.Amount)
}

func TestAmountSerializesAsString(t *testing.T) {
	b, err := json.Marshal(Amount("250000.00"))
	require.NoError(t, err)
	assert.Equal(t, `"250000.00"`, string(b))
}

func TestAmountRejectsGarbage(t *testing.T) {
	var a Amount
	assert.Error(t, json.Unmarshal([]byte(`{"not":"a number"}`), &a))
}
