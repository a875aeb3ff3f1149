package seed

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	raw := []byte(`
assets:
  - name: Gold
    value: "1850.75"
  - name: Treasury Bond
    value: "100"
clients:
  - name: Ada Lovelace
    email: ada@example.com
  - name: Grace Hopper
    email: grace@example.com
    status: false
allocations:
  - clientEmail: ada@example.com
    assetName: Gold
    quantity: 10
`)

	desired, err := Parse(raw)
	require.NoError(t, err)

	require.Len(t, desired.Assets, 2)
	assert.Equal(t, "Gold", desired.Assets[0].Name)
	assert.True(t, desired.Assets[0].Value.Equal(decimal.RequireFromString("1850.75")))

	require.Len(t, desired.Clients, 2)
	assert.Nil(t, desired.Clients[0].Status, "omitted status should stay nil")
	require.NotNil(t, desired.Clients[1].Status)
	assert.False(t, *desired.Clients[1].Status)

	require.Len(t, desired.Allocations, 1)
	assert.Equal(t, "ada@example.com", desired.Allocations[0].ClientEmail)
	assert.Equal(t, "Gold", desired.Allocations[0].AssetName)
	assert.Equal(t, int64(10), desired.Allocations[0].Quantity)
}

func TestParseRejectsBadAssetValue(t *testing.T) {
	raw := []byte(`
assets:
  - name: Gold
    value: "not-a-number"
`)

	_, err := Parse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gold")
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("assets: [unclosed"))
	require.Error(t, err)
}

func TestParseEmptyFile(t *testing.T) {
	desired, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, desired.Assets)
	assert.Empty(t, desired.Clients)
	assert.Empty(t, desired.Allocations)
}
