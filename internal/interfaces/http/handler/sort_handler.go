// Package handler contains the HTTP handlers for the sorting API.
// Handlers are thin adapters: they decode requests, delegate to the
// application services, and render responses.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/hapkiduki/sortline-go/internal/application/dto"
	"github.com/hapkiduki/sortline-go/internal/application/port"
	"github.com/hapkiduki/sortline-go/internal/application/service"
	"github.com/hapkiduki/sortline-go/internal/domain/valueobject"
)

// MaxBatchSize is the maximum number of packages accepted in one batch call.
const MaxBatchSize = 1000

// SortHandler handles package classification requests.
type SortHandler struct {
	service *service.SortingService
	logger  port.Logger
}

// NewSortHandler creates a new SortHandler.
//
// Parameters:
//   - svc: the sorting application service
//   - logger: structured logger
//
// Returns:
//   - *SortHandler: the created handler
func NewSortHandler(svc *service.SortingService, logger port.Logger) *SortHandler {
	return &SortHandler{
		service: svc,
		logger:  logger,
	}
}

// Routes returns the router for the package sorting endpoints.
//
// Returns:
//   - chi.Router: router with the sort endpoints mounted
func (h *SortHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/sort", h.Sort)
	r.Post("/sort/batch", h.SortBatch)
	return r
}

// Sort handles POST /sort. It classifies a single package and returns the
// category together with the volume and predicate intermediates.
func (h *SortHandler) Sort(w http.ResponseWriter, r *http.Request) {
	var req dto.SortRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewErrorResponse[*dto.SortResult]("INVALID_BODY", "Request body must be valid JSON"))
		return
	}

	if validationErrs := validateMeasurements(req); len(validationErrs) > 0 {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, dto.NewValidationErrorResponse[*dto.SortResult](validationErrs))
		return
	}

	result, err := h.service.SortPackage(r.Context(), req)
	if err != nil {
		// Measurements were validated above, so this is unexpected.
		h.logger.WithContext(r.Context()).Error("Sort failed after validation", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, dto.NewErrorResponse[*dto.SortResult]("INTERNAL_ERROR", "Failed to sort package"))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.NewSuccessResponse(result))
}

// SortBatch handles POST /sort/batch. Packages fail independently; the
// response reports a per-item outcome in request order.
func (h *SortHandler) SortBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchSortRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewErrorResponse[*dto.BatchSortResult]("INVALID_BODY", "Request body must be valid JSON"))
		return
	}

	if len(req.Packages) == 0 {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewErrorResponse[*dto.BatchSortResult]("EMPTY_BATCH", "Batch must contain at least one package"))
		return
	}

	if len(req.Packages) > MaxBatchSize {
		render.Status(r, http.StatusRequestEntityTooLarge)
		render.JSON(w, r, dto.NewErrorResponse[*dto.BatchSortResult]("BATCH_TOO_LARGE", "Batch exceeds the maximum number of packages"))
		return
	}

	result := h.service.SortBatch(r.Context(), req)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.NewSuccessResponse(result))
}

// validateMeasurements checks each measurement through its value-object
// constructor and reports field-level validation errors.
func validateMeasurements(req dto.SortRequest) []dto.ValidationError {
	var errs []dto.ValidationError

	lengths := []struct {
		field string
		value float64
	}{
		{"width", req.Width},
		{"height", req.Height},
		{"length", req.Length},
	}

	for _, f := range lengths {
		if _, err := valueobject.NewLength(f.value); err != nil {
			errs = append(errs, dto.ValidationError{
				Field:   f.field,
				Message: "must be a finite, non-negative number of centimeters",
			})
		}
	}

	if _, err := valueobject.NewMass(req.Mass); err != nil {
		errs = append(errs, dto.ValidationError{
			Field:   "mass",
			Message: "must be a finite, non-negative number of kilograms",
		})
	}

	return errs
}
