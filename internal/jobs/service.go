package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/plumbbid/backend/pkg/db/models"
	"github.com/plumbbid/backend/pkg/enums"
	pkgerrors "github.com/plumbbid/backend/pkg/errors"
)

const maxNameLength = 200

// JobsRepository is the job storage surface the service drives.
type JobsRepository interface {
	GetAll(ctx context.Context) ([]models.Job, error)
	GetByContractorID(ctx context.Context, contractorID int) ([]models.Job, error)
	GetByID(ctx context.Context, id int) (*models.Job, error)
	Add(ctx context.Context, job *models.Job) (*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	ReplaceFixtureLines(ctx context.Context, jobID int, lines []models.JobFixtureItem) error
	Delete(ctx context.Context, id int) error
	WithTx(tx *gorm.DB) JobsRepository
}

// OptionsRepository is the option line storage surface.
type OptionsRepository interface {
	GetByJobID(ctx context.Context, jobID int) ([]models.JobOption, error)
	Add(ctx context.Context, option *models.JobOption) (*models.JobOption, error)
	DeleteByJobID(ctx context.Context, jobID int) error
	WithTx(tx *gorm.DB) OptionsRepository
}

type fixtureCatalog interface {
	GetAll(ctx context.Context) ([]models.FixtureItem, error)
	GetByID(ctx context.Context, id int) (*models.FixtureItem, error)
}

type contractorLoader interface {
	GetByID(ctx context.Context, id int) (*models.Contractor, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes job creation, reconciling updates, reads, and deletion.
type Service interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	ListJobsByContractor(ctx context.Context, contractorID int) ([]models.Job, error)
	GetJob(ctx context.Context, id int) (*models.Job, error)
	CreateJob(ctx context.Context, input CreateJobInput) (*models.Job, error)
	UpdateJob(ctx context.Context, id int, input UpdateJobInput) (*models.Job, error)
	DeleteJob(ctx context.Context, id int) error
}

// OptionInput is a caller-supplied ad-hoc line. Price is authoritative from
// the caller; there is no snapshot source.
type OptionInput struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// CreateJobInput holds everything needed to open a job. FixtureQuantities
// maps fixture ids to desired quantities.
type CreateJobInput struct {
	ContractorID      int
	JobName           string
	FixtureQuantities map[int]int
	Options           []OptionInput
}

// UpdateJobInput is the complete desired state of a job: scalar fields plus
// the full fixture-quantity mapping and the full option list.
type UpdateJobInput struct {
	JobName           string
	Status            enums.JobStatus
	FixtureQuantities map[int]int
	Options           []OptionInput
}

type service struct {
	repo        JobsRepository
	options     OptionsRepository
	fixtures    fixtureCatalog
	contractors contractorLoader
	tx          txRunner
}

// NewService builds a job service over the provided collaborators.
func NewService(repo JobsRepository, options OptionsRepository, fixtures fixtureCatalog, contractors contractorLoader, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("job repository required")
	}
	if options == nil {
		return nil, fmt.Errorf("option repository required")
	}
	if fixtures == nil {
		return nil, fmt.Errorf("fixture catalog required")
	}
	if contractors == nil {
		return nil, fmt.Errorf("contractor loader required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, options: options, fixtures: fixtures, contractors: contractors, tx: tx}, nil
}

func (s *service) ListJobs(ctx context.Context) ([]models.Job, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list jobs")
	}
	return rows, nil
}

func (s *service) ListJobsByContractor(ctx context.Context, contractorID int) ([]models.Job, error) {
	rows, err := s.repo.GetByContractorID(ctx, contractorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list contractor jobs")
	}
	return rows, nil
}

func (s *service) GetJob(ctx context.Context, id int) (*models.Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "job not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load job")
	}
	return job, nil
}

// CreateJob opens a new job. Every fixture line captures the fixture's price
// at this instant; quantity-0 entries and fixture ids that do not resolve
// produce no line and no error.
func (s *service) CreateJob(ctx context.Context, input CreateJobInput) (*models.Job, error) {
	name, err := validateJobName(input.JobName)
	if err != nil {
		return nil, err
	}

	if _, err := s.contractors.GetByID(ctx, input.ContractorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "contractor does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load contractor")
	}

	var lines []models.JobFixtureItem
	for fixtureID, quantity := range input.FixtureQuantities {
		if quantity <= 0 {
			continue
		}
		fixture, err := s.fixtures.GetByID(ctx, fixtureID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve fixture")
		}
		lines = append(lines, models.JobFixtureItem{
			FixtureItemID: fixture.ID,
			Quantity:      quantity,
			Price:         fixture.Price(),
		})
	}

	job := &models.Job{
		JobName:      name,
		Status:       enums.JobStatusOpen,
		ContractorID: input.ContractorID,
		FixtureItems: lines,
		Options:      buildOptionLines(input.Options),
	}

	created, err := s.repo.Add(ctx, job)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create job")
	}
	return created, nil
}

// UpdateJob reconciles the job against the complete desired state. The walk
// is driven by the full fixture catalog: lines that already exist keep their
// original snapshot price and only have their quantity adjusted, lines whose
// desired quantity is 0 are dropped, and fixtures gaining a line for the
// first time get a fresh snapshot taken now. Option lines are rebuilt from
// scratch on every update. A missing job id is a silent no-op returning
// (nil, nil).
func (s *service) UpdateJob(ctx context.Context, id int, input UpdateJobInput) (*models.Job, error) {
	name, err := validateJobName(input.JobName)
	if err != nil {
		return nil, err
	}
	if !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid job status")
	}

	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load job")
	}

	catalog, err := s.fixtures.GetAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load fixture catalog")
	}

	existing := make(map[int]models.JobFixtureItem, len(job.FixtureItems))
	for _, line := range job.FixtureItems {
		existing[line.FixtureItemID] = line
	}

	// Lines referencing fixtures no longer in the catalog never match
	// during the walk and are dropped with the replace below.
	var kept []models.JobFixtureItem
	for _, fixture := range catalog {
		quantity := input.FixtureQuantities[fixture.ID]
		if line, ok := existing[fixture.ID]; ok {
			if quantity <= 0 {
				continue
			}
			line.Quantity = quantity
			kept = append(kept, line)
			continue
		}
		if quantity > 0 {
			kept = append(kept, models.JobFixtureItem{
				JobID:         job.ID,
				FixtureItemID: fixture.ID,
				Quantity:      quantity,
				Price:         fixture.Price(),
			})
		}
	}

	newOptions := buildOptionLines(input.Options)

	job.JobName = name
	job.Status = input.Status

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		jobRepo := s.repo.WithTx(tx)
		optionRepo := s.options.WithTx(tx)

		if err := jobRepo.Update(ctx, job); err != nil {
			return err
		}
		if err := jobRepo.ReplaceFixtureLines(ctx, job.ID, kept); err != nil {
			return err
		}
		if err := optionRepo.DeleteByJobID(ctx, job.ID); err != nil {
			return err
		}
		for i := range newOptions {
			newOptions[i].JobID = job.ID
			if _, err := optionRepo.Add(ctx, &newOptions[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist job update")
	}

	job.FixtureItems = kept
	job.Options = newOptions
	return job, nil
}

// DeleteJob removes a job and, through the schema, its lines. A missing id is
// tolerated.
func (s *service) DeleteJob(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete job")
	}
	return nil
}

// buildOptionLines filters option inputs down to persistable lines: blank
// names and non-positive quantities produce nothing. Prices pass through
// verbatim.
func buildOptionLines(inputs []OptionInput) []models.JobOption {
	var lines []models.JobOption
	for _, input := range inputs {
		name := strings.TrimSpace(input.Name)
		if name == "" || input.Quantity <= 0 {
			continue
		}
		lines = append(lines, models.JobOption{
			Name:     name,
			Quantity: input.Quantity,
			Price:    input.Price,
		})
	}
	return lines
}

func validateJobName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "job name is required")
	}
	if len(trimmed) > maxNameLength {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "job name exceeds 200 characters")
	}
	return trimmed, nil
}
