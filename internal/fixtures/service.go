package fixtures

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/plumbbid/backend/pkg/db"
	"github.com/plumbbid/backend/pkg/db/models"
	pkgerrors "github.com/plumbbid/backend/pkg/errors"
)

const maxNameLength = 200

type fixturesRepository interface {
	GetAll(ctx context.Context) ([]models.FixtureItem, error)
	GetByID(ctx context.Context, id int) (*models.FixtureItem, error)
	Add(ctx context.Context, fixture *models.FixtureItem) (*models.FixtureItem, error)
	Update(ctx context.Context, fixture *models.FixtureItem) error
	Delete(ctx context.Context, id int) error
}

type bidItemLoader interface {
	GetByID(ctx context.Context, id int) (*models.BidItem, error)
}

// Service exposes catalog maintenance for fixtures. Membership is expressed
// as bid item id lists; ids that do not resolve are skipped silently.
type Service interface {
	ListFixtures(ctx context.Context) ([]models.FixtureItem, error)
	GetFixture(ctx context.Context, id int) (*models.FixtureItem, error)
	CreateFixture(ctx context.Context, input FixtureInput) (*models.FixtureItem, error)
	UpdateFixture(ctx context.Context, id int, input FixtureInput) error
	DeleteFixture(ctx context.Context, id int) error
}

// FixtureInput holds the caller-supplied fixture fields. BidItemIDs is the
// complete desired membership.
type FixtureInput struct {
	Name       string
	BidItemIDs []int
}

type service struct {
	repo     fixturesRepository
	bidItems bidItemLoader
}

// NewService builds a fixture service over the provided repositories.
func NewService(repo fixturesRepository, bidItems bidItemLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("fixture repository required")
	}
	if bidItems == nil {
		return nil, fmt.Errorf("bid item loader required")
	}
	return &service{repo: repo, bidItems: bidItems}, nil
}

func (s *service) ListFixtures(ctx context.Context) ([]models.FixtureItem, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list fixtures")
	}
	return rows, nil
}

func (s *service) GetFixture(ctx context.Context, id int) (*models.FixtureItem, error) {
	fixture, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "fixture item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load fixture")
	}
	return fixture, nil
}

func (s *service) CreateFixture(ctx context.Context, input FixtureInput) (*models.FixtureItem, error) {
	trimmed, err := validateFixtureName(input.Name)
	if err != nil {
		return nil, err
	}

	members, err := s.resolveBidItems(ctx, input.BidItemIDs)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Add(ctx, &models.FixtureItem{Name: trimmed, BidItems: members})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create fixture")
	}
	return created, nil
}

// UpdateFixture loads, mutates, and saves the fixture, replacing the
// membership with the resolved id list. A missing fixture id is a silent
// no-op.
func (s *service) UpdateFixture(ctx context.Context, id int, input FixtureInput) error {
	trimmed, err := validateFixtureName(input.Name)
	if err != nil {
		return err
	}

	fixture, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load fixture")
	}

	members, err := s.resolveBidItems(ctx, input.BidItemIDs)
	if err != nil {
		return err
	}

	fixture.Name = trimmed
	fixture.BidItems = members

	if err := s.repo.Update(ctx, fixture); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update fixture")
	}
	return nil
}

// DeleteFixture removes a fixture. The delete is rejected while job lines
// still hold a price snapshot against it; a missing id is tolerated.
func (s *service) DeleteFixture(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if db.IsForeignKeyViolation(err) {
			return pkgerrors.New(pkgerrors.CodeConflict, "fixture item is referenced by job lines")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete fixture")
	}
	return nil
}

// resolveBidItems turns an id list into bid item rows, skipping ids that do
// not resolve and collapsing duplicates.
func (s *service) resolveBidItems(ctx context.Context, ids []int) ([]models.BidItem, error) {
	var members []models.BidItem
	seen := map[int]struct{}{}
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		item, err := s.bidItems.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve bid item")
		}
		members = append(members, *item)
	}
	return members, nil
}

func validateFixtureName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "fixture name is required")
	}
	if len(trimmed) > maxNameLength {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "fixture name exceeds 200 characters")
	}
	return trimmed, nil
}
