package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/plumbbid/backend/api/responses"
	"github.com/plumbbid/backend/api/validators"
	"github.com/plumbbid/backend/internal/fixtures"
	"github.com/plumbbid/backend/pkg/db/models"
	"github.com/plumbbid/backend/pkg/logger"
)

type fixtureItemRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	BidItemIDs []int  `json:"bid_item_ids"`
}

type fixtureItemResponse struct {
	ID       int               `json:"id"`
	Name     string            `json:"name"`
	Price    decimal.Decimal   `json:"price"`
	BidItems []bidItemResponse `json:"bid_items"`
}

func toFixtureItemResponse(fixture models.FixtureItem) fixtureItemResponse {
	members := make([]bidItemResponse, 0, len(fixture.BidItems))
	for _, item := range fixture.BidItems {
		members = append(members, toBidItemResponse(item))
	}
	return fixtureItemResponse{
		ID:       fixture.ID,
		Name:     fixture.Name,
		Price:    fixture.Price(),
		BidItems: members,
	}
}

func ListFixtureItems(svc fixtures.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListFixtures(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]fixtureItemResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, toFixtureItemResponse(row))
		}
		responses.WriteSuccess(w, out)
	}
}

func GetFixtureItem(svc fixtures.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "fixtureItemID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		fixture, err := svc.GetFixture(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toFixtureItemResponse(*fixture))
	}
}

func CreateFixtureItem(svc fixtures.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload fixtureItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateFixture(r.Context(), fixtures.FixtureInput{
			Name:       payload.Name,
			BidItemIDs: payload.BidItemIDs,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, toFixtureItemResponse(*created))
	}
}

func UpdateFixtureItem(svc fixtures.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "fixtureItemID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload fixtureItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateFixture(r.Context(), id, fixtures.FixtureInput{
			Name:       payload.Name,
			BidItemIDs: payload.BidItemIDs,
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

func DeleteFixtureItem(svc fixtures.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "fixtureItemID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteFixture(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
