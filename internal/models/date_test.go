package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.March, 14)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-14"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d.String(), back.String())
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("14/03/2026")
	assert.Error(t, err)
}

func TestDateScanFromTime(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-03-14", d.String())
}

func TestDateScanFromString(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2026-03-14"))
	assert.Equal(t, "2026-03-14", d.String())
}
