package fixtures

import (
	"context"

	"gorm.io/gorm"

	"github.com/plumbbid/backend/internal/repo"
	"github.com/plumbbid/backend/pkg/db/models"
)

// Repository exposes fixture item persistence operations, including the
// many-to-many bid item membership.
type Repository struct {
	base repo.Base
}

// NewRepository constructs a fixture repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// GetAll returns every fixture with its member bid items preloaded, ordered
// by id.
func (r *Repository) GetAll(ctx context.Context) ([]models.FixtureItem, error) {
	var rows []models.FixtureItem
	if err := r.base.DB(ctx).Preload("BidItems").Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID loads a single fixture with its member bid items. Returns
// gorm.ErrRecordNotFound when the id does not resolve.
func (r *Repository) GetByID(ctx context.Context, id int) (*models.FixtureItem, error) {
	var row models.FixtureItem
	if err := r.base.DB(ctx).Preload("BidItems").First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Add inserts a new fixture together with its membership join rows and
// returns it with its generated id populated.
func (r *Repository) Add(ctx context.Context, fixture *models.FixtureItem) (*models.FixtureItem, error) {
	if err := r.base.DB(ctx).Create(fixture).Error; err != nil {
		return nil, err
	}
	return fixture, nil
}

// Update saves the fixture row and replaces its bid item membership with
// whatever is attached to the struct.
func (r *Repository) Update(ctx context.Context, fixture *models.FixtureItem) error {
	db := r.base.DB(ctx)
	if err := db.Omit("BidItems").Save(fixture).Error; err != nil {
		return err
	}
	return db.Model(fixture).Association("BidItems").Replace(&fixture.BidItems)
}

// Delete removes a fixture by id. Membership join rows cascade; the database
// rejects the delete while any job fixture line still references the row.
// A missing id is not an error.
func (r *Repository) Delete(ctx context.Context, id int) error {
	return r.base.DB(ctx).Delete(&models.FixtureItem{}, id).Error
}
