package storage

import (
	"testing"
	"time"

	"github.com/poiesic/marginalia/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("test content")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func sampleAnnotation(now time.Time) *core.Annotation {
	rect := core.Rect{X0: 72.5, Y0: 90.25, X1: 301, Y1: 102}
	return &core.Annotation{
		Id:         core.ID(7),
		Document:   core.IDFromContent("report.pdf"),
		Page:       3,
		Action:     core.ActionUnderline,
		Kind:       core.KindParameter,
		Text:       "learning rate 3e-4 über alles",
		Comment:    "Parameter: learning rate",
		Subject:    "Training",
		Author:     "marginalia",
		Color:      core.KindParameter.Color(),
		Quads:      []core.Quad{core.QuadFromRect(rect), core.QuadFromRect(core.Rect{X0: 72, Y0: 104, X1: 120, Y1: 116})},
		OpenPopup:  true,
		PopupRect:  core.Rect{X0: 311, Y0: 90.25, X1: 561, Y1: 210.25},
		InsertedAt: now,
		UpdatedAt:  now.Add(time.Second),
	}
}

func TestMarshalUnmarshalAnnotation(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	original := sampleAnnotation(now)

	decoded, err := UnmarshalAnnotation(MarshalAnnotation(original))
	require.NoError(t, err)

	assert.Equal(t, original.Quads, decoded.Quads)
	assert.Equal(t, original.PopupRect, decoded.PopupRect)
	assert.Equal(t, original.Color, decoded.Color)
	assert.Equal(t, original.InfoKey(), decoded.InfoKey())
	assert.Equal(t, original.Kind, decoded.Kind)
	assert.Equal(t, original.Text, decoded.Text)
	assert.True(t, decoded.OpenPopup)
	assert.True(t, original.InsertedAt.Equal(decoded.InsertedAt))
	assert.True(t, original.UpdatedAt.Equal(decoded.UpdatedAt))
}

func TestMarshalUnmarshalAnnotation_NoQuads(t *testing.T) {
	original := &core.Annotation{Id: 1, Document: 2, Page: 1, Action: core.ActionHighlight}

	decoded, err := UnmarshalAnnotation(MarshalAnnotation(original))
	require.NoError(t, err)
	assert.Empty(t, decoded.Quads)
	assert.True(t, decoded.InsertedAt.IsZero())
}

func TestUnmarshalAnnotation_Invalid(t *testing.T) {
	valid := MarshalAnnotation(sampleAnnotation(time.Now().UTC()))

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty data", []byte{}, ErrSerializationFailed},
		{"invalid data", []byte{0xFF, 0xFF, 0xFF}, ErrSerializationFailed},
		{"partial data", []byte{1, 2, 3}, ErrSerializationFailed},
		{"truncated record", valid[:len(valid)/2], ErrSerializationFailed},
		{"trailing bytes", append(append([]byte{}, valid...), 0), ErrTrailingData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalAnnotation(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMarshalUnmarshalCheckpoint(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	original := &core.Checkpoint{
		Document:     core.IDFromContent("report.pdf"),
		Instructions: 12,
		Matched:      9,
		Expected:     11,
		Added:        7,
		Duplicates:   2,
		UpdatedAt:    now,
	}

	decoded, err := UnmarshalCheckpoint(MarshalCheckpoint(original))
	require.NoError(t, err)
	assert.Equal(t, original.Document, decoded.Document)
	assert.Equal(t, original.Matched, decoded.Matched)
	assert.Equal(t, original.Expected, decoded.Expected)
	assert.Equal(t, original.Added, decoded.Added)
	assert.Equal(t, original.Duplicates, decoded.Duplicates)
	assert.Equal(t, original.Instructions, decoded.Instructions)
	assert.True(t, original.UpdatedAt.Equal(decoded.UpdatedAt))

	_, err = UnmarshalCheckpoint(nil)
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
