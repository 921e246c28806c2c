package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yarwhq/yarw/internal/domain/entities"
	"github.com/yarwhq/yarw/internal/domain/values"
)

func TestNewProfileView(t *testing.T) {
	id := values.MustParseProfileID("123e4567-e89b-12d3-a456-426614174000")
	p := entities.NewProfile("Main")
	p.Renderer = values.RendererVulkan
	p.SetFlag("b", values.IntFlag(7))
	p.SetFlag("a", values.BoolFlag(true))

	view := NewProfileView(id, p)

	assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", view.ID)
	assert.Equal(t, "Main", view.Name)
	assert.Equal(t, "player", view.Variant)
	assert.Equal(t, "vulkan", view.Renderer)
	require.Len(t, view.Flags, 2)
	assert.Equal(t, FlagView{Name: "a", Kind: "bool", Value: true}, view.Flags[0])
	assert.Equal(t, FlagView{Name: "b", Kind: "int", Value: int64(7)}, view.Flags[1])
}

func TestNewProfileView_NoFlags(t *testing.T) {
	view := NewProfileView(values.NewProfileID(), entities.NewProfile("bare"))
	assert.Nil(t, view.Flags)
}
