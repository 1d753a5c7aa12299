package contractors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/plumbbid/backend/pkg/db/models"
	pkgerrors "github.com/plumbbid/backend/pkg/errors"
)

const maxNameLength = 200

type contractorsRepository interface {
	GetAll(ctx context.Context) ([]models.Contractor, error)
	GetByID(ctx context.Context, id int) (*models.Contractor, error)
	Add(ctx context.Context, contractor *models.Contractor) (*models.Contractor, error)
	Update(ctx context.Context, contractor *models.Contractor) error
	Delete(ctx context.Context, id int) error
}

// Service exposes contractor maintenance.
type Service interface {
	ListContractors(ctx context.Context) ([]models.Contractor, error)
	GetContractor(ctx context.Context, id int) (*models.Contractor, error)
	CreateContractor(ctx context.Context, name string) (*models.Contractor, error)
	UpdateContractor(ctx context.Context, id int, name string) error
	DeleteContractor(ctx context.Context, id int) error
}

type service struct {
	repo contractorsRepository
}

// NewService builds a contractor service over the provided repository.
func NewService(repo contractorsRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contractor repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListContractors(ctx context.Context) ([]models.Contractor, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list contractors")
	}
	return rows, nil
}

func (s *service) GetContractor(ctx context.Context, id int) (*models.Contractor, error) {
	contractor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "contractor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load contractor")
	}
	return contractor, nil
}

func (s *service) CreateContractor(ctx context.Context, name string) (*models.Contractor, error) {
	trimmed, err := validateContractorName(name)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Add(ctx, &models.Contractor{Name: trimmed})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create contractor")
	}
	return created, nil
}

// UpdateContractor loads, mutates, and saves the contractor. A missing id is
// a silent no-op.
func (s *service) UpdateContractor(ctx context.Context, id int, name string) error {
	trimmed, err := validateContractorName(name)
	if err != nil {
		return err
	}

	contractor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load contractor")
	}

	contractor.Name = trimmed
	if err := s.repo.Update(ctx, contractor); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update contractor")
	}
	return nil
}

// DeleteContractor removes a contractor together with its jobs. A missing id
// is tolerated.
func (s *service) DeleteContractor(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete contractor")
	}
	return nil
}

func validateContractorName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "contractor name is required")
	}
	if len(trimmed) > maxNameLength {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "contractor name exceeds 200 characters")
	}
	return trimmed, nil
}
