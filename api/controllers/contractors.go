package controllers

import (
	"net/http"

	"github.com/plumbbid/backend/api/responses"
	"github.com/plumbbid/backend/api/validators"
	"github.com/plumbbid/backend/internal/contractors"
	"github.com/plumbbid/backend/internal/jobs"
	"github.com/plumbbid/backend/pkg/db/models"
	"github.com/plumbbid/backend/pkg/logger"
)

type contractorRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type contractorResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func toContractorResponse(contractor models.Contractor) contractorResponse {
	return contractorResponse{ID: contractor.ID, Name: contractor.Name}
}

func ListContractors(svc contractors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListContractors(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]contractorResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, toContractorResponse(row))
		}
		responses.WriteSuccess(w, out)
	}
}

func GetContractor(svc contractors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "contractorID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		contractor, err := svc.GetContractor(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toContractorResponse(*contractor))
	}
}

func CreateContractor(svc contractors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload contractorRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateContractor(r.Context(), payload.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, toContractorResponse(*created))
	}
}

func UpdateContractor(svc contractors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "contractorID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload contractorRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateContractor(r.Context(), id, payload.Name); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

func DeleteContractor(svc contractors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "contractorID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteContractor(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// ListContractorJobs returns the jobs owned by one contractor.
func ListContractorJobs(svc jobs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "contractorID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.ListJobsByContractor(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]jobResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, toJobResponse(row))
		}
		responses.WriteSuccess(w, out)
	}
}
