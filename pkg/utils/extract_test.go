package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare object",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "prose around object",
			input:    "Here is your itinerary:\n{\"a\": 1}\nEnjoy!",
			expected: `{"a": 1}`,
		},
		{
			name:     "markdown fences",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "nested objects",
			input:    `text {"a": {"b": {"c": 3}}} trailing`,
			expected: `{"a": {"b": {"c": 3}}}`,
		},
		{
			name:     "braces inside strings",
			input:    `{"note": "use {curly} braces", "n": 1}`,
			expected: `{"note": "use {curly} braces", "n": 1}`,
		},
		{
			name:     "escaped quotes inside strings",
			input:    `{"note": "he said \"hi {\" loudly"}`,
			expected: `{"note": "he said \"hi {\" loudly"}`,
		},
		{
			name:     "no object",
			input:    "sorry, cannot help",
			expected: "",
		},
		{
			name:     "unterminated object",
			input:    `{"a": 1`,
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractJSONObject(tc.input))
		})
	}
}

func TestExtractJSONObjectParseable(t *testing.T) {
	raw := ExtractJSONObject("Intro text ```json\n{\"days\": [1, 2, 3], \"title\": \"Trip {flat} plan\"}\n``` outro")
	require.NotEmpty(t, raw)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	assert.Equal(t, "Trip {flat} plan", out["title"])
}

func TestIsGuestID(t *testing.T) {
	assert.True(t, IsGuestID("guest_abc"))
	assert.True(t, IsGuestID("guest_"))
	assert.False(t, IsGuestID("guest"))
	assert.False(t, IsGuestID("user_guest_1"))
	assert.False(t, IsGuestID(""))
}
