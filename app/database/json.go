package database

import "encoding/json"

// List and struct fields persist as JSON text columns. Marshal failures are
// impossible for these shapes, so writers fall back to empty JSON rather than
// propagating an error nobody can act on.

func marshalJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}

func unmarshalStrings(data string) []string {
	var out []string
	if data == "" {
		return out
	}
	_ = json.Unmarshal([]byte(data), &out)
	return out
}

func unmarshalJSON(data string, v interface{}) {
	if data == "" {
		return
	}
	_ = json.Unmarshal([]byte(data), v)
}
