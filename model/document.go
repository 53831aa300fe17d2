package model

import "encoding/json"

// TypeKey is the conventional payload field collaborators set so their
// events can be filtered. The ledger never interprets any other field.
const TypeKey = "type"

// Document is the open, string-keyed event payload attached to a block.
// Values must be JSON-compatible (nil, bool, float64, string, []interface{},
// map[string]interface{}); Normalize coerces anything else that encodes to
// JSON into that shape.
type Document map[string]interface{}

// Type returns the conventional "type" tag, or "" when unset.
func (d Document) Type() string {
	t, _ := d[TypeKey].(string)
	return t
}

// Normalize maps the document onto the plain JSON value space by a
// marshal/unmarshal round trip. Hashing a normalized document is stable
// across export and import, because the serialized form decodes back to
// the exact value that was hashed.
func (d Document) Normalize() (Document, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
