package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/plumbbid/backend/api/responses"
	"github.com/plumbbid/backend/api/validators"
	"github.com/plumbbid/backend/internal/biditems"
	"github.com/plumbbid/backend/pkg/db/models"
	"github.com/plumbbid/backend/pkg/enums"
	pkgerrors "github.com/plumbbid/backend/pkg/errors"
	"github.com/plumbbid/backend/pkg/logger"
)

type bidItemRequest struct {
	Name     string          `json:"name" validate:"required,max=200"`
	Price    decimal.Decimal `json:"price"`
	Phase    string          `json:"phase" validate:"required"`
	ItemType string          `json:"item_type" validate:"required"`
}

type bidItemResponse struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Phase    string          `json:"phase"`
	ItemType string          `json:"item_type"`
}

func toBidItemResponse(item models.BidItem) bidItemResponse {
	return bidItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Phase:    item.Phase.String(),
		ItemType: item.ItemType.String(),
	}
}

func parseBidItemRequest(payload bidItemRequest) (enums.Phase, enums.BidItemType, error) {
	phase, err := enums.ParsePhase(payload.Phase)
	if err != nil {
		return "", "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid phase")
	}
	itemType, err := enums.ParseBidItemType(payload.ItemType)
	if err != nil {
		return "", "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item type")
	}
	return phase, itemType, nil
}

func ListBidItems(svc biditems.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListBidItems(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]bidItemResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, toBidItemResponse(row))
		}
		responses.WriteSuccess(w, out)
	}
}

func GetBidItem(svc biditems.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "bidItemID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.GetBidItem(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toBidItemResponse(*item))
	}
}

func CreateBidItem(svc biditems.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload bidItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		phase, itemType, err := parseBidItemRequest(payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateBidItem(r.Context(), biditems.CreateBidItemInput{
			Name:     payload.Name,
			Price:    payload.Price,
			Phase:    phase,
			ItemType: itemType,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, toBidItemResponse(*created))
	}
}

func UpdateBidItem(svc biditems.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "bidItemID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload bidItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		phase, itemType, err := parseBidItemRequest(payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateBidItem(r.Context(), id, biditems.UpdateBidItemInput{
			Name:     payload.Name,
			Price:    payload.Price,
			Phase:    phase,
			ItemType: itemType,
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

func DeleteBidItem(svc biditems.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "bidItemID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteBidItem(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
