package repositories

import (
	"errors"

	"github.com/furuyashikiiori/portfolio-auto-generator/internal/models"
)

// ErrNotFound is returned by repositories when no record exists for the given ID.
var ErrNotFound = errors.New("portfolio not found")

// PortfolioRepository defines the interface for portfolio data access.
// The in-memory implementation is the authoritative store for the default
// deployment shape; the GORM implementation is the seam for durable storage.
type PortfolioRepository interface {
	Create(portfolio *models.Portfolio) error
	GetByID(id string) (*models.Portfolio, error)
	GetAll() ([]models.Portfolio, error)
	Delete(id string) error
}
