package templates_test

import (
	"testing"

	"github.com/furuyashikiiori/portfolio-auto-generator/internal/templates"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, templates.IsValid("simple"))
	assert.True(t, templates.IsValid("techblue"))
	assert.False(t, templates.IsValid("SIMPLE"))
	assert.False(t, templates.IsValid(""))
	assert.False(t, templates.IsValid("marble"))
}

func TestResolveFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "neon", templates.Resolve("neon"))
	assert.Equal(t, templates.DefaultID, templates.Resolve("marble"))
	assert.Equal(t, templates.DefaultID, templates.Resolve(""))
}

func TestAllReturnsACopy(t *testing.T) {
	first := templates.All()
	first[0].ID = "mutated"
	assert.Equal(t, templates.DefaultID, templates.All()[0].ID)
}
