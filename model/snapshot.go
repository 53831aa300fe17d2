package model

import "encoding/json"

// Snapshot is the canonical serialized representation of a whole chain,
// the only format Export produces and Import accepts.
type Snapshot struct {
	Chain      []Block `json:"chain"`
	Difficulty int     `json:"difficulty"`
}

// Marshal renders the snapshot as JSON.
func (s Snapshot) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// ParseSnapshot decodes a serialized chain. A decode failure here means
// the document is malformed; chain-level checks happen at import.
func ParseSnapshot(raw []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}
