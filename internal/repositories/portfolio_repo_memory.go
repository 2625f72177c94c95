package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/furuyashikiiori/portfolio-auto-generator/internal/models"

	"github.com/google/uuid"
)

// MemoryPortfolioRepository is an in-memory implementation of PortfolioRepository.
// Contents live for the process lifetime only and are lost on restart.
type MemoryPortfolioRepository struct {
	portfolios map[string]models.Portfolio
	mu         sync.RWMutex
}

// NewMemoryPortfolioRepository creates a new instance of MemoryPortfolioRepository.
func NewMemoryPortfolioRepository() *MemoryPortfolioRepository {
	return &MemoryPortfolioRepository{
		portfolios: make(map[string]models.Portfolio),
	}
}

// Create inserts a portfolio, assigning an ID if none is set and stamping
// the creation time. Insertion is a single value-copy map write, so a record
// is never observable in a partially applied state.
func (r *MemoryPortfolioRepository) Create(portfolio *models.Portfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if portfolio.ID == "" {
		portfolio.ID = uuid.New().String()
	}
	portfolio.CreatedAt = time.Now()
	r.portfolios[portfolio.ID] = *portfolio
	return nil
}

// GetByID returns a portfolio by its ID. The returned value is a copy; reads
// never expose the stored record to mutation.
func (r *MemoryPortfolioRepository) GetByID(id string) (*models.Portfolio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	portfolio, ok := r.portfolios[id]
	if !ok {
		return nil, fmt.Errorf("portfolio with ID %s: %w", id, ErrNotFound)
	}
	return &portfolio, nil
}

// GetAll returns all stored portfolios.
func (r *MemoryPortfolioRepository) GetAll() ([]models.Portfolio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Portfolio, 0, len(r.portfolios))
	for _, p := range r.portfolios {
		list = append(list, p)
	}
	return list, nil
}

// Delete removes a portfolio by its ID. No HTTP route calls this; it exists
// for collaborators and future retention tooling.
func (r *MemoryPortfolioRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.portfolios[id]; !ok {
		return fmt.Errorf("portfolio with ID %s: %w", id, ErrNotFound)
	}
	delete(r.portfolios, id)
	return nil
}
