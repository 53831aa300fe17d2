package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    Command
		wantErr bool
	}{
		{`append {"type": "token_mint", "tokenId": "abc"}`, Command{Op: APPEND, Args: []string{`{"type": "token_mint", "tokenId": "abc"}`}}, false},
		{"query token_mint", Command{Op: QUERY, Args: []string{"token_mint"}}, false},
		{"stats", Command{Op: STATS}, false},
		{"validate", Command{Op: VALIDATE}, false},
		{"export chain.json", Command{Op: EXPORT, Args: []string{"chain.json"}}, false},
		{"import chain.json", Command{Op: IMPORT, Args: []string{"chain.json"}}, false},
		{"show 5", Command{Op: SHOW, Args: []string{"5"}}, false},
		{"quit", Command{Op: QUIT}, false},
		{"exit", Command{Op: QUIT}, false},
		{"", Command{}, true},
		{"bogus", Command{}, true},
		{"append not-json", Command{}, true},
		{"append", Command{}, true},
		{"show five", Command{}, true},
		{"stats extra", Command{}, true},
		{"query", Command{}, true},
	}
	for _, tc := range tests {
		got, err := CreateCommand(tc.line)
		if tc.wantErr {
			assert.NotNil(t, err, "line %q", tc.line)
			continue
		}
		assert.Nil(t, err, "line %q", tc.line)
		assert.Equal(t, tc.want, got, "line %q", tc.line)
	}
}

func TestDefaultCommand(t *testing.T) {
	assert.True(t, NewDefaultCommand().IsDefault())
	assert.False(t, Command{Op: STATS}.IsDefault())
}
