package dto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexPrice acepta el precio como string o como número JSON: el formulario
// manda "100.50" pero hay clientes que serializan 100.5 a secas. El valor se
// conserva como texto decimal; null y valores no numéricos normalizan a
// vacío (vacío = 0 para el caso de uso).
type FlexPrice string

// UnmarshalJSON implementa la normalización al decodificar el body.
func (p *FlexPrice) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*p = FlexPrice(strings.TrimSpace(v))
	case json.Number:
		*p = FlexPrice(v.String())
	default:
		*p = ""
	}
	return nil
}

// String devuelve el precio como texto decimal ("" si no vino).
func (p FlexPrice) String() string { return string(p) }

// Empty responde si no vino precio.
func (p FlexPrice) Empty() bool { return p == "" }
