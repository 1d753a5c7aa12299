package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	fixturesvc "github.com/plumbbid/backend/internal/fixtures"
	"github.com/plumbbid/backend/pkg/db/models"
	pkgerrors "github.com/plumbbid/backend/pkg/errors"
)

type stubFixtureService struct {
	fixtures  []models.FixtureItem
	fixture   *models.FixtureItem
	created   *models.FixtureItem
	lastInput fixturesvc.FixtureInput
	deleteErr error
}

func (s *stubFixtureService) ListFixtures(ctx context.Context) ([]models.FixtureItem, error) {
	return s.fixtures, nil
}

func (s *stubFixtureService) GetFixture(ctx context.Context, id int) (*models.FixtureItem, error) {
	return s.fixture, nil
}

func (s *stubFixtureService) CreateFixture(ctx context.Context, input fixturesvc.FixtureInput) (*models.FixtureItem, error) {
	s.lastInput = input
	return s.created, nil
}

func (s *stubFixtureService) UpdateFixture(ctx context.Context, id int, input fixturesvc.FixtureInput) error {
	s.lastInput = input
	return nil
}

func (s *stubFixtureService) DeleteFixture(ctx context.Context, id int) error {
	return s.deleteErr
}

func withFixtureID(req *http.Request, id string) *http.Request {
	rc := chi.NewRouteContext()
	rc.URLParams.Add("fixtureItemID", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

func TestCreateFixtureItemExposesDerivedPrice(t *testing.T) {
	svc := &stubFixtureService{created: &models.FixtureItem{
		ID:   5,
		Name: "Sink Kit",
		BidItems: []models.BidItem{
			{ID: 1, Name: "sink", Price: decimal.RequireFromString("50.00")},
			{ID: 2, Name: "trap", Price: decimal.RequireFromString("25.00")},
		},
	}}
	handler := CreateFixtureItem(svc, nil)

	body := `{"name":"Sink Kit","bid_item_ids":[1,2]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fixture-items", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if len(svc.lastInput.BidItemIDs) != 2 {
		t.Fatalf("expected both member ids forwarded, got %v", svc.lastInput.BidItemIDs)
	}

	var envelope struct {
		Data fixtureItemResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.Price.Equal(decimal.RequireFromString("75.00")) {
		t.Fatalf("expected derived price 75, got %s", envelope.Data.Price)
	}
}

func TestDeleteFixtureItemConflict(t *testing.T) {
	svc := &stubFixtureService{deleteErr: pkgerrors.New(pkgerrors.CodeConflict, "fixture item is referenced by job lines")}
	handler := DeleteFixtureItem(svc, nil)

	req := withFixtureID(httptest.NewRequest(http.MethodDelete, "/api/v1/fixture-items/3", nil), "3")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
}

func TestDeleteFixtureItemNoContent(t *testing.T) {
	handler := DeleteFixtureItem(&stubFixtureService{}, nil)

	req := withFixtureID(httptest.NewRequest(http.MethodDelete, "/api/v1/fixture-items/3", nil), "3")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", resp.Code)
	}
}
