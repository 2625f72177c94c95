package repositories_test

import (
	"testing"

	"github.com/furuyashikiiori/portfolio-auto-generator/internal/models"
	"github.com/furuyashikiiori/portfolio-auto-generator/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupGORMRepo opens an in-memory SQLite database and migrates the schema.
func setupGORMRepo(t *testing.T) *repositories.GORMPortfolioRepository {
	t.Helper()

	// A named in-memory database with a shared cache keeps every pooled
	// connection on the same data while isolating tests from each other.
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Portfolio{}))

	return repositories.NewGORMPortfolioRepository(db)
}

func TestGORMRepository_CreateAndGet(t *testing.T) {
	repo := setupGORMRepo(t)

	portfolio := &models.Portfolio{
		Name:     "Taro",
		Skills:   []models.Skill{{Name: "Go", Level: 4}},
		Projects: []models.Project{{Title: "Chat App", Tech: []string{"Go", "React"}}},
		SNSLinks: []string{"https://a.com", "https://b.com"},
		Template: "techblue",
	}
	err := repo.Create(portfolio)
	assert.NoError(t, err)
	assert.NotEmpty(t, portfolio.ID)

	fetched, err := repo.GetByID(portfolio.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Taro", fetched.Name)
	// Slice fields survive the JSON serializer round trip.
	assert.Equal(t, portfolio.Skills, fetched.Skills)
	assert.Equal(t, portfolio.Projects, fetched.Projects)
	assert.Equal(t, portfolio.SNSLinks, fetched.SNSLinks)
}

func TestGORMRepository_GetByIDNotFound(t *testing.T) {
	repo := setupGORMRepo(t)

	fetched, err := repo.GetByID("missing")
	assert.Error(t, err)
	assert.Nil(t, fetched)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMRepository_GetAllAndDelete(t *testing.T) {
	repo := setupGORMRepo(t)

	first := &models.Portfolio{Name: "A"}
	second := &models.Portfolio{Name: "B"}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	assert.NoError(t, repo.Delete(first.ID))
	err = repo.Delete(first.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	all, err = repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}
