package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
)

func decodeFlexPrice(t *testing.T, raw string) dto.FlexPrice {
	t.Helper()
	var p dto.FlexPrice
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func TestFlexPrice_String(t *testing.T) {
	assert.Equal(t, "100.50", decodeFlexPrice(t, `"100.50"`).String())
	assert.Equal(t, "100.50", decodeFlexPrice(t, `" 100.50 "`).String(), "recorta espacios")
}

func TestFlexPrice_NumeroJSON(t *testing.T) {
	// Hay clientes que serializan el precio como número, no como string.
	assert.Equal(t, "100", decodeFlexPrice(t, `100`).String())
	assert.Equal(t, "100.5", decodeFlexPrice(t, `100.5`).String())
}

func TestFlexPrice_NumeroGrande_NoPierdePrecision(t *testing.T) {
	// UseNumber evita el paso por float64.
	assert.Equal(t, "99999999999999.99", decodeFlexPrice(t, `99999999999999.99`).String())
}

func TestFlexPrice_ValoresNoNumericos_NormalizanAVacio(t *testing.T) {
	for _, raw := range []string{`null`, `true`, `{}`, `[]`} {
		p := decodeFlexPrice(t, raw)
		assert.True(t, p.Empty(), "raw=%s", raw)
	}
}

func TestFlexPrice_DentroDeItemRequest(t *testing.T) {
	var in dto.ItemRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Widget","price":100}`), &in))
	assert.Equal(t, "Widget", in.Name)
	assert.Equal(t, "100", in.Price.String())
}
