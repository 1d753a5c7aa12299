package biditems

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

type bidItemsRepository interface {
	GetAll(ctx context.Context) ([]models.BidItem, error)
	GetByID(ctx context.Context, id int) (*models.BidItem, error)
	Add(ctx context.Context, item *models.BidItem) (*models.BidItem, error)
	Update(ctx context.Context, item *models.BidItem) error
	Delete(ctx context.Context, id int) error
}

// Service exposes catalog maintenance for bid items.
type Service interface {
	ListBidItems(ctx context.Context) ([]models.BidItem, error)
	GetBidItem(ctx context.Context, id int) (*models.BidItem, error)
	CreateBidItem(ctx context.Context, input CreateBidItemInput) (*models.BidItem, error)
	UpdateBidItem(ctx context.Context, id int, input UpdateBidItemInput) error
	DeleteBidItem(ctx context.Context, id int) error
}

type service struct {
	repo bidItemsRepository
}

// CreateBidItemInput holds the fields for a new catalog bid item.
type CreateBidItemInput struct {
	Name     string
	Price    decimal.Decimal
	Phase    enums.Phase
	ItemType enums.BidItemType
}

// UpdateBidItemInput carries the mutable fields of an existing bid item.
type UpdateBidItemInput struct {
	Name     string
	Price    decimal.Decimal
	Phase    enums.Phase
	ItemType enums.BidItemType
}

// NewService builds a bid item service over the provided repository.
func NewService(repo bidItemsRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("bid item repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListBidItems(ctx context.Context) ([]models.BidItem, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bid items")
	}
	return rows, nil
}

func (s *service) GetBidItem(ctx context.Context, id int) (*models.BidItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "bid item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bid item")
	}
	return item, nil
}

func (s *service) CreateBidItem(ctx context.Context, input CreateBidItemInput) (*models.BidItem, error) {
	if err := validateBidItemFields(input.Name, input.Phase, input.ItemType); err != nil {
		return nil, err
	}

	item := &models.BidItem{
		Name:     strings.TrimSpace(input.Name),
		Price:    input.Price,
		Phase:    input.Phase,
		ItemType: input.ItemType,
	}

	created, err := s.repo.Add(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create bid item")
	}
	return created, nil
}

// UpdateBidItem loads, mutates, and saves the bid item. A missing id is a
// silent no-op.
func (s *service) UpdateBidItem(ctx context.Context, id int, input UpdateBidItemInput) error {
	if err := validateBidItemFields(input.Name, input.Phase, input.ItemType); err != nil {
		return err
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bid item")
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Price = input.Price
	item.Phase = input.Phase
	item.ItemType = input.ItemType

	if err := s.repo.Update(ctx, item); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update bid item")
	}
	return nil
}

// DeleteBidItem removes a bid item. Deletion is unrestricted: fixtures that
// reference the item simply lose that member, and a missing id is tolerated.
func (s *service) DeleteBidItem(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete bid item")
	}
	return nil
}

func validateBidItemFields(name string, phase enums.Phase, itemType enums.BidItemType) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "bid item name is required")
	}
	if len(trimmed) > maxNameLength {
		return pkgerrors.New(pkgerrors.CodeValidation, "bid item name exceeds 200 characters")
	}
	if !phase.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid phase")
	}
	if !itemType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid item type")
	}
	return nil
}
