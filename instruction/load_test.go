package instruction

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/marginalia/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `[
		{"text": "key: net revenue increased", "comment": "Key: growth", "page": 3, "author": "ana"},
		{"text": "learning rate", "action": "Underline", "page": null, "subject": "Training"},
		{"text": "plain", "extra": true}
	]`

	instructions, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, instructions, 3)

	assert.Equal(t, core.Instruction{
		Text:    "key: net revenue increased",
		Page:    3,
		Comment: "Key: growth",
		Author:  "ana",
	}, instructions[0])
	assert.Equal(t, "Underline", instructions[1].Action)
	assert.Equal(t, 0, instructions[1].Page, "null page means every page")
	assert.Equal(t, "Training", instructions[1].Subject)
	assert.Equal(t, 0, instructions[2].Page)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"not json", `text`, ErrMalformed},
		{"object instead of array", `{"text": "a"}`, ErrMalformed},
		{"wrong field type", `[{"text": 5}]`, ErrMalformed},
		{"page zero", `[{"text": "a", "page": 0}]`, ErrInvalidPage},
		{"negative page", `[{"text": "a"}, {"text": "b", "page": -2}]`, ErrInvalidPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	instructions, err := Parse(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, instructions)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instructions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"text": "über große Änderungen", "page": 1}]`), 0o644))

	instructions, err := Load(path)
	require.NoError(t, err)
	require.Len(t, instructions, 1)
	assert.Equal(t, "über große Änderungen", instructions[0].Text)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode(t *testing.T) {
	original := []core.Instruction{
		{Text: "a", Page: 2, Comment: "Key:x"},
		{Text: "b", Action: "underline", Subject: "s", Author: "me"},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, original))
	assert.Contains(t, buf.String(), "null")

	decoded, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
