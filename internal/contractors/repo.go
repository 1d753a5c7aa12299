package contractors

import (
	"context"

	"gorm.io/gorm"

	"github.com/plumbbid/backend/internal/repo"
	"github.com/plumbbid/backend/pkg/db/models"
)

// Repository exposes contractor persistence operations.
type Repository struct {
	base repo.Base
}

// NewRepository constructs a contractor repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// GetAll returns every contractor ordered by id.
func (r *Repository) GetAll(ctx context.Context) ([]models.Contractor, error) {
	var rows []models.Contractor
	if err := r.base.DB(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID loads a single contractor. Returns gorm.ErrRecordNotFound when the
// id does not resolve.
func (r *Repository) GetByID(ctx context.Context, id int) (*models.Contractor, error) {
	var row models.Contractor
	if err := r.base.DB(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Add inserts a new contractor and returns it with its generated id populated.
func (r *Repository) Add(ctx context.Context, contractor *models.Contractor) (*models.Contractor, error) {
	if err := r.base.DB(ctx).Create(contractor).Error; err != nil {
		return nil, err
	}
	return contractor, nil
}

// Update saves the full contractor row.
func (r *Repository) Update(ctx context.Context, contractor *models.Contractor) error {
	return r.base.DB(ctx).Save(contractor).Error
}

// Delete removes a contractor by id. The schema cascades the delete to the
// contractor's jobs and their lines. A missing id is not an error.
func (r *Repository) Delete(ctx context.Context, id int) error {
	return r.base.DB(ctx).Delete(&models.Contractor{}, id).Error
}
