package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogOrderAndContent(t *testing.T) {
	c := DefaultCatalog()

	templates := c.Templates()
	require.Len(t, templates, 3)
	assert.Equal(t, "template1", templates[0].ID)
	assert.Equal(t, "Modern Minimal", templates[0].Name)
	assert.Equal(t, "template2", templates[1].ID)
	assert.Equal(t, "Creative Portfolio", templates[1].Name)
	assert.Equal(t, "template3", templates[2].ID)
	assert.Equal(t, "Developer Focus", templates[2].Name)

	for _, tmpl := range templates {
		assert.NotEmpty(t, tmpl.Description)
		assert.NotEmpty(t, tmpl.Thumbnail)
		assert.Len(t, tmpl.Features, 4)
	}
}

func TestByID(t *testing.T) {
	c := DefaultCatalog()

	tmpl, ok := c.ByID("template2")
	require.True(t, ok)
	assert.Equal(t, "Creative Portfolio", tmpl.Name)

	_, ok = c.ByID("template9")
	assert.False(t, ok)
}

func TestResolveFallsBackToFirstEntry(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, "template3", c.Resolve("template3").ID)
	assert.Equal(t, "template1", c.Resolve("nonexistent").ID)
	assert.Equal(t, "template1", c.Resolve("").ID)
	assert.Equal(t, c.Default(), c.Resolve("nonexistent"))
}

func TestCatalogSupportsArbitraryFixedSize(t *testing.T) {
	c := NewCatalog(
		Template{ID: "a", Name: "A"},
		Template{ID: "b", Name: "B"},
	)

	assert.Equal(t, "a", c.Default().ID)
	assert.Equal(t, "b", c.Resolve("b").ID)
	assert.Equal(t, "a", c.Resolve("zzz").ID)
}

func TestNewCatalogPanicsOnEmptyList(t *testing.T) {
	assert.Panics(t, func() { NewCatalog() })
}

func TestTemplatesReturnsCopy(t *testing.T) {
	c := DefaultCatalog()

	templates := c.Templates()
	templates[0].Name = "hacked"

	assert.Equal(t, "Modern Minimal", c.Default().Name)
}
