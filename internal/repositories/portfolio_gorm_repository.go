package repositories

import (
	"fmt"
	"time"

	"github.com/furuyashikiiori/portfolio-auto-generator/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPortfolioRepository is a GORM implementation of PortfolioRepository.
// It backs deployments that configure DATABASE_URL and want records to
// survive a process restart.
type GORMPortfolioRepository struct {
	db *gorm.DB
}

// NewGORMPortfolioRepository creates a new instance of GORMPortfolioRepository.
func NewGORMPortfolioRepository(db *gorm.DB) *GORMPortfolioRepository {
	return &GORMPortfolioRepository{
		db: db,
	}
}

// Create inserts a new portfolio row, assigning an ID and creation time
// the same way the in-memory store does.
func (r *GORMPortfolioRepository) Create(portfolio *models.Portfolio) error {
	if portfolio.ID == "" {
		portfolio.ID = uuid.New().String()
	}
	portfolio.CreatedAt = time.Now()
	if err := r.db.Create(portfolio).Error; err != nil {
		return fmt.Errorf("failed to create portfolio: %w", err)
	}
	return nil
}

// GetByID retrieves a single portfolio by its ID.
func (r *GORMPortfolioRepository) GetByID(id string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := r.db.First(&portfolio, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("portfolio with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get portfolio by ID %s: %w", id, err)
	}
	return &portfolio, nil
}

// GetAll retrieves all portfolios.
func (r *GORMPortfolioRepository) GetAll() ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	if err := r.db.Find(&portfolios).Error; err != nil {
		return nil, fmt.Errorf("failed to get all portfolios: %w", err)
	}
	return portfolios, nil
}

// Delete removes a portfolio row by its ID.
func (r *GORMPortfolioRepository) Delete(id string) error {
	res := r.db.Delete(&models.Portfolio{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete portfolio: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("portfolio with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
