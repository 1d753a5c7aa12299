package jobs

import (
	"context"

	"gorm.io/gorm"

	"github.com/plumbbid/backend/internal/repo"
	"github.com/plumbbid/backend/pkg/db/models"
)

// Repository exposes job persistence operations, including the replacement
// primitives the update reconciliation relies on.
type Repository struct {
	base repo.Base
}

// NewRepository constructs a job repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) JobsRepository {
	if tx == nil {
		return r
	}
	return &Repository{base: r.base.WithConn(tx)}
}

// GetAll returns every job with contractor and lines preloaded, ordered by id.
func (r *Repository) GetAll(ctx context.Context) ([]models.Job, error) {
	var rows []models.Job
	if err := r.base.DB(ctx).
		Preload("Contractor").
		Preload("FixtureItems").
		Preload("Options").
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByContractorID returns the jobs owned by one contractor, ordered by id.
func (r *Repository) GetByContractorID(ctx context.Context, contractorID int) ([]models.Job, error) {
	var rows []models.Job
	if err := r.base.DB(ctx).
		Preload("FixtureItems").
		Preload("Options").
		Where("contractor_id = ?", contractorID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID loads a single job with contractor and both line collections.
// Returns gorm.ErrRecordNotFound when the id does not resolve.
func (r *Repository) GetByID(ctx context.Context, id int) (*models.Job, error) {
	var row models.Job
	if err := r.base.DB(ctx).
		Preload("Contractor").
		Preload("FixtureItems").
		Preload("Options").
		First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Add inserts a new job; its attached fixture and option lines are persisted
// with it.
func (r *Repository) Add(ctx context.Context, job *models.Job) (*models.Job, error) {
	if err := r.base.DB(ctx).Omit("Contractor").Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Update saves the job's scalar fields only. Line collections are replaced
// through ReplaceFixtureLines and the option repository.
func (r *Repository) Update(ctx context.Context, job *models.Job) error {
	return r.base.DB(ctx).
		Omit("Contractor", "FixtureItems", "Options").
		Save(job).Error
}

// ReplaceFixtureLines swaps the job's fixture lines for the provided set.
// The incoming lines carry their already-decided snapshot prices; nothing is
// recomputed here.
func (r *Repository) ReplaceFixtureLines(ctx context.Context, jobID int, lines []models.JobFixtureItem) error {
	tx := r.base.DB(ctx)
	if err := tx.Where("job_id = ?", jobID).Delete(&models.JobFixtureItem{}).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	for i := range lines {
		lines[i].ID = 0
		lines[i].JobID = jobID
		lines[i].FixtureItem = nil
	}
	return tx.Create(&lines).Error
}

// Delete removes a job by id; its lines cascade. A missing id is not an
// error.
func (r *Repository) Delete(ctx context.Context, id int) error {
	return r.base.DB(ctx).Delete(&models.Job{}, id).Error
}

// OptionRepository exposes job option persistence. Options are rebuilt
// wholesale on every job update, so the surface is delete-by-job plus insert
// alongside the usual reads.
type OptionRepository struct {
	base repo.Base
}

// NewOptionRepository constructs an option repository tied to the provided
// GORM DB.
func NewOptionRepository(db *gorm.DB) *OptionRepository {
	return &OptionRepository{base: repo.NewBase(db)}
}

// WithTx binds the repository to a transaction.
func (r *OptionRepository) WithTx(tx *gorm.DB) OptionsRepository {
	if tx == nil {
		return r
	}
	return &OptionRepository{base: r.base.WithConn(tx)}
}

// GetByJobID returns the option lines attached to one job, ordered by id.
func (r *OptionRepository) GetByJobID(ctx context.Context, jobID int) ([]models.JobOption, error) {
	var rows []models.JobOption
	if err := r.base.DB(ctx).Where("job_id = ?", jobID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID loads a single option line. Returns gorm.ErrRecordNotFound when the
// id does not resolve.
func (r *OptionRepository) GetByID(ctx context.Context, id int) (*models.JobOption, error) {
	var row models.JobOption
	if err := r.base.DB(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Add inserts a new option line and returns it with its generated id
// populated.
func (r *OptionRepository) Add(ctx context.Context, option *models.JobOption) (*models.JobOption, error) {
	if err := r.base.DB(ctx).Create(option).Error; err != nil {
		return nil, err
	}
	return option, nil
}

// DeleteByJobID removes every option line attached to the job.
func (r *OptionRepository) DeleteByJobID(ctx context.Context, jobID int) error {
	return r.base.DB(ctx).Where("job_id = ?", jobID).Delete(&models.JobOption{}).Error
}
