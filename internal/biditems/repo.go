package biditems

import (
	"context"

	"gorm.io/gorm"

	"github.com/plumbbid/backend/internal/repo"
	"github.com/plumbbid/backend/pkg/db/models"
)

// Repository exposes bid item persistence operations.
type Repository struct {
	base repo.Base
}

// NewRepository constructs a bid item repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// GetAll returns every catalog bid item ordered by id.
func (r *Repository) GetAll(ctx context.Context) ([]models.BidItem, error) {
	var rows []models.BidItem
	if err := r.base.DB(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID loads a single bid item. Returns gorm.ErrRecordNotFound when the id
// does not resolve.
func (r *Repository) GetByID(ctx context.Context, id int) (*models.BidItem, error) {
	var row models.BidItem
	if err := r.base.DB(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Add inserts a new bid item and returns it with its generated id populated.
func (r *Repository) Add(ctx context.Context, item *models.BidItem) (*models.BidItem, error) {
	if err := r.base.DB(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Update saves the full bid item row.
func (r *Repository) Update(ctx context.Context, item *models.BidItem) error {
	return r.base.DB(ctx).Save(item).Error
}

// Delete removes a bid item by id. Deleting a missing id is not an error.
func (r *Repository) Delete(ctx context.Context, id int) error {
	return r.base.DB(ctx).Delete(&models.BidItem{}, id).Error
}
