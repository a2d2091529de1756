package dto

import (
	"encoding/json"
	"strings"
)

// FlexID acepta las formas polimórficas de identificador que mandan los
// clientes del formulario de salidas: string cruda, objeto {"$oid": "..."},
// {"id": "..."} o {"_id": "..."}. Precedencia dentro del objeto: $oid, id, _id.
// Los centinelas "", "-", "null" y "None" normalizan a vacío.
type FlexID string

// UnmarshalJSON implementa la normalización al decodificar el body.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = FlexID(normalizeID(raw))
	return nil
}

// String devuelve el id canónico ("" si no hay).
func (f FlexID) String() string { return string(f) }

// Empty responde si no se resolvió ningún id.
func (f FlexID) Empty() bool { return f == "" }

func normalizeID(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return cleanIDString(v)
	case map[string]interface{}:
		for _, key := range []string{"$oid", "id", "_id"} {
			if inner, ok := v[key]; ok {
				if s := normalizeID(inner); s != "" {
					return s
				}
			}
		}
		return ""
	default:
		return ""
	}
}

func cleanIDString(s string) string {
	s = strings.TrimSpace(s)
	switch s {
	case "", "-", "null", "None":
		return ""
	}
	return s
}
