package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentType(t *testing.T) {
	assert.Equal(t, "token_mint", Document{"type": "token_mint"}.Type())
	assert.Equal(t, "", Document{}.Type())
	// A non-string type tag is treated as unset.
	assert.Equal(t, "", Document{"type": 7}.Type())
}

func TestNormalize(t *testing.T) {
	d := Document{
		"type":  "token_usage",
		"units": 3,
		"nested": map[string]interface{}{
			"count": int64(9),
			"tags":  []interface{}{"a", 1},
		},
	}
	got, err := d.Normalize()
	require.Nil(t, err)

	// Everything numeric lands as float64, the JSON value space.
	assert.Equal(t, float64(3), got["units"])
	nested := got["nested"].(map[string]interface{})
	assert.Equal(t, float64(9), nested["count"])
	assert.Equal(t, []interface{}{"a", float64(1)}, nested["tags"])

	// Normalizing again is a no-op.
	again, err := got.Normalize()
	require.Nil(t, err)
	assert.Equal(t, got, again)
}

func TestNormalizeRejectsUnserializable(t *testing.T) {
	_, err := Document{"bad": make(chan int)}.Normalize()
	assert.NotNil(t, err)
}
