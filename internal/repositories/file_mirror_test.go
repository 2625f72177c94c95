package repositories_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/furuyashikiiori/portfolio-auto-generator/internal/models"
	"github.com/furuyashikiiori/portfolio-auto-generator/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMirror_WriteAndRead(t *testing.T) {
	dir := t.TempDir()
	mirror := repositories.NewFileMirror(dir)

	portfolio := &models.Portfolio{
		ID:       "abc-123",
		Name:     "Taro",
		Skills:   []models.Skill{{Name: "Go", Level: 5}},
		SNSLinks: []string{"https://a.com"},
		Template: "neon",
	}
	require.NoError(t, mirror.Write(portfolio))

	// One file per record, named by ID.
	_, err := os.Stat(filepath.Join(dir, "abc-123.json"))
	assert.NoError(t, err)

	fetched, err := mirror.Read("abc-123")
	assert.NoError(t, err)
	assert.Equal(t, portfolio.Name, fetched.Name)
	assert.Equal(t, portfolio.Skills, fetched.Skills)
	assert.Equal(t, portfolio.SNSLinks, fetched.SNSLinks)
}

func TestFileMirror_WriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	mirror := repositories.NewFileMirror(dir)

	require.NoError(t, mirror.Write(&models.Portfolio{ID: "x"}))
	_, err := os.Stat(dir)
	assert.NoError(t, err)
}

func TestFileMirror_ReadMissingIsNotFound(t *testing.T) {
	mirror := repositories.NewFileMirror(t.TempDir())

	fetched, err := mirror.Read("missing")
	assert.Error(t, err)
	assert.Nil(t, fetched)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestFileMirror_CorruptFileIsNotFound(t *testing.T) {
	dir := t.TempDir()
	mirror := repositories.NewFileMirror(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	fetched, err := mirror.Read("bad")
	assert.Error(t, err)
	assert.Nil(t, fetched)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
