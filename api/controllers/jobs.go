package controllers

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/plumbbid/backend/api/responses"
	"github.com/plumbbid/backend/api/validators"
	"github.com/plumbbid/backend/internal/jobs"
	"github.com/plumbbid/backend/pkg/db/models"
	"github.com/plumbbid/backend/pkg/enums"
	pkgerrors "github.com/plumbbid/backend/pkg/errors"
	"github.com/plumbbid/backend/pkg/logger"
)

type jobOptionRequest struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type createJobRequest struct {
	ContractorID      int                `json:"contractor_id" validate:"required,gt=0"`
	JobName           string             `json:"job_name" validate:"required,max=200"`
	FixtureQuantities map[string]int     `json:"fixture_quantities"`
	Options           []jobOptionRequest `json:"options"`
}

type updateJobRequest struct {
	JobName           string             `json:"job_name" validate:"required,max=200"`
	Status            string             `json:"status" validate:"required"`
	FixtureQuantities map[string]int     `json:"fixture_quantities"`
	Options           []jobOptionRequest `json:"options"`
}

type jobFixtureLineResponse struct {
	ID            int             `json:"id"`
	FixtureItemID int             `json:"fixture_item_id"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
}

type jobOptionResponse struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type jobResponse struct {
	ID           int                      `json:"id"`
	JobName      string                   `json:"job_name"`
	Status       string                   `json:"status"`
	ContractorID int                      `json:"contractor_id"`
	FixtureItems []jobFixtureLineResponse `json:"fixture_items"`
	Options      []jobOptionResponse      `json:"options"`
	TotalCost    decimal.Decimal          `json:"total_cost"`
}

func toJobResponse(job models.Job) jobResponse {
	lines := make([]jobFixtureLineResponse, 0, len(job.FixtureItems))
	for _, line := range job.FixtureItems {
		lines = append(lines, jobFixtureLineResponse{
			ID:            line.ID,
			FixtureItemID: line.FixtureItemID,
			Quantity:      line.Quantity,
			Price:         line.Price,
		})
	}
	options := make([]jobOptionResponse, 0, len(job.Options))
	for _, option := range job.Options {
		options = append(options, jobOptionResponse{
			ID:       option.ID,
			Name:     option.Name,
			Quantity: option.Quantity,
			Price:    option.Price,
		})
	}
	return jobResponse{
		ID:           job.ID,
		JobName:      job.JobName,
		Status:       job.Status.String(),
		ContractorID: job.ContractorID,
		FixtureItems: lines,
		Options:      options,
		TotalCost:    job.TotalCost(),
	}
}

// parseFixtureQuantities converts the JSON object's string keys into fixture
// ids. Keys must be numeric; unresolvable ids are the service's concern.
func parseFixtureQuantities(raw map[string]int) (map[int]int, error) {
	out := make(map[int]int, len(raw))
	for key, quantity := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "fixture_quantities keys must be numeric ids")
		}
		out[id] = quantity
	}
	return out, nil
}

func toOptionInputs(requests []jobOptionRequest) []jobs.OptionInput {
	out := make([]jobs.OptionInput, 0, len(requests))
	for _, option := range requests {
		out = append(out, jobs.OptionInput{
			Name:     option.Name,
			Quantity: option.Quantity,
			Price:    option.Price,
		})
	}
	return out
}

func ListJobs(svc jobs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListJobs(r.Context())
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

func GetJob(svc jobs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "jobID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		job, err := svc.GetJob(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toJobResponse(*job))
	}
}

func CreateJob(svc jobs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createJobRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quantities, err := parseFixtureQuantities(payload.FixtureQuantities)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateJob(r.Context(), jobs.CreateJobInput{
			ContractorID:      payload.ContractorID,
			JobName:           payload.JobName,
			FixtureQuantities: quantities,
			Options:           toOptionInputs(payload.Options),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, toJobResponse(*created))
	}
}

func UpdateJob(svc jobs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "jobID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateJobRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseJobStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		quantities, err := parseFixtureQuantities(payload.FixtureQuantities)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateJob(r.Context(), id, jobs.UpdateJobInput{
			JobName:           payload.JobName,
			Status:            status,
			FixtureQuantities: quantities,
			Options:           toOptionInputs(payload.Options),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if updated == nil {
			responses.WriteNoContent(w)
			return
		}
		responses.WriteSuccess(w, toJobResponse(*updated))
	}
}

func DeleteJob(svc jobs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "jobID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteJob(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
