package fixtures

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/plumbbid/backend/pkg/db/models"
	pkgerrors "github.com/plumbbid/backend/pkg/errors"
)

type stubFixtureRepo struct {
	rows      []models.FixtureItem
	byID      *models.FixtureItem
	created   *models.FixtureItem
	updated   *models.FixtureItem
	deleteErr error
	deletedID int
}

func (s *stubFixtureRepo) GetAll(ctx context.Context) ([]models.FixtureItem, error) {
	return s.rows, nil
}

func (s *stubFixtureRepo) GetByID(ctx context.Context, id int) (*models.FixtureItem, error) {
	if s.byID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.byID, nil
}

func (s *stubFixtureRepo) Add(ctx context.Context, fixture *models.FixtureItem) (*models.FixtureItem, error) {
	fixture.ID = 5
	s.created = fixture
	return fixture, nil
}

func (s *stubFixtureRepo) Update(ctx context.Context, fixture *models.FixtureItem) error {
	s.updated = fixture
	return nil
}

func (s *stubFixtureRepo) Delete(ctx context.Context, id int) error {
	s.deletedID = id
	return s.deleteErr
}

type stubBidItemLoader struct {
	items map[int]models.BidItem
}

func (s *stubBidItemLoader) GetByID(ctx context.Context, id int) (*models.BidItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func price(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(value)
}

func TestCreateFixtureResolvesMembers(t *testing.T) {
	repo := &stubFixtureRepo{}
	loader := &stubBidItemLoader{items: map[int]models.BidItem{
		1: {ID: 1, Name: "sink", Price: decimal.RequireFromString("50.00")},
		2: {ID: 2, Name: "trap", Price: decimal.RequireFromString("25.00")},
	}}
	svc, err := NewService(repo, loader)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	created, err := svc.CreateFixture(context.Background(), FixtureInput{
		Name:       "Sink Kit",
		BidItemIDs: []int{1, 2, 999},
	})
	if err != nil {
		t.Fatalf("CreateFixture: %v", err)
	}
	if len(created.BidItems) != 2 {
		t.Fatalf("expected unresolved id skipped, got %d members", len(created.BidItems))
	}
	if !created.Price().Equal(price(t, "75.00")) {
		t.Fatalf("unexpected derived price %s", created.Price())
	}
}

func TestCreateFixtureDeduplicatesMemberIDs(t *testing.T) {
	repo := &stubFixtureRepo{}
	loader := &stubBidItemLoader{items: map[int]models.BidItem{
		1: {ID: 1, Name: "sink", Price: decimal.RequireFromString("50.00")},
	}}
	svc, _ := NewService(repo, loader)

	created, err := svc.CreateFixture(context.Background(), FixtureInput{
		Name:       "Sink Kit",
		BidItemIDs: []int{1, 1, 1},
	})
	if err != nil {
		t.Fatalf("CreateFixture: %v", err)
	}
	if len(created.BidItems) != 1 {
		t.Fatalf("expected duplicates collapsed, got %d members", len(created.BidItems))
	}
}

func TestUpdateFixtureMissingIsNoOp(t *testing.T) {
	repo := &stubFixtureRepo{}
	svc, _ := NewService(repo, &stubBidItemLoader{})

	if err := svc.UpdateFixture(context.Background(), 12, FixtureInput{Name: "anything"}); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if repo.updated != nil {
		t.Fatalf("expected no save for a missing row")
	}
}

func TestUpdateFixtureReplacesMembership(t *testing.T) {
	repo := &stubFixtureRepo{byID: &models.FixtureItem{
		ID:   3,
		Name: "old",
		BidItems: []models.BidItem{
			{ID: 1, Price: decimal.RequireFromString("50.00")},
		},
	}}
	loader := &stubBidItemLoader{items: map[int]models.BidItem{
		2: {ID: 2, Name: "trap", Price: decimal.RequireFromString("25.00")},
	}}
	svc, _ := NewService(repo, loader)

	err := svc.UpdateFixture(context.Background(), 3, FixtureInput{
		Name:       "Renamed Kit",
		BidItemIDs: []int{2},
	})
	if err != nil {
		t.Fatalf("UpdateFixture: %v", err)
	}
	if repo.updated == nil {
		t.Fatalf("expected update to reach the repository")
	}
	if repo.updated.Name != "Renamed Kit" {
		t.Fatalf("unexpected name %q", repo.updated.Name)
	}
	if len(repo.updated.BidItems) != 1 || repo.updated.BidItems[0].ID != 2 {
		t.Fatalf("expected membership replaced, got %+v", repo.updated.BidItems)
	}
}

func TestDeleteFixtureRestrictedByJobLines(t *testing.T) {
	repo := &stubFixtureRepo{deleteErr: fmt.Errorf("update or delete on table \"fixture_items\" violates foreign key constraint \"fk_job_fixture_items_fixture\"")}
	svc, _ := NewService(repo, &stubBidItemLoader{})

	err := svc.DeleteFixture(context.Background(), 3)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestDeleteFixtureTolerant(t *testing.T) {
	repo := &stubFixtureRepo{}
	svc, _ := NewService(repo, &stubBidItemLoader{})

	if err := svc.DeleteFixture(context.Background(), 8); err != nil {
		t.Fatalf("DeleteFixture: %v", err)
	}
	if repo.deletedID != 8 {
		t.Fatalf("expected delete for id 8, got %d", repo.deletedID)
	}
}
