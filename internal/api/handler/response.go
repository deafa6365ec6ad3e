package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storefront/people-catalog/internal/api/metrics"
	"github.com/storefront/people-catalog/internal/core/domain"
)

// Status messages returned by the mutation endpoints.
const (
	msgRegistered        = "Successfully Registered! %s with id of %d"
	msgEmailExists       = "Email Already Exists! please login."
	msgAdded             = "Successfully added!"
	msgEdited            = "Successfully edited!"
	msgCategoryExists    = "Category Already Exists!"
	msgCategoryMissing   = "Category Doesn't Exist!"
	msgInvalidItemParams = "Item parameters are not valid!"
	msgCannotEdit        = "Cannot edit %s"
)

// ErrorResponse is the error envelope of every 4xx/5xx response. The API
// error handler renders it; the handlers reference it in their docs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope of every mutation result.
type messageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

type deleteResponse struct {
	Deleted bool `json:"deleted"`
}

type tableResultResponse struct {
	Table        string `json:"table"`
	RowsAffected int64  `json:"rowsAffected"`
	Failed       bool   `json:"failed,omitempty"`
}

type compositeResponse struct {
	Message string                `json:"message"`
	Results []tableResultResponse `json:"results"`
}

type editResponse struct {
	Message      string `json:"message"`
	RowsAffected int64  `json:"rowsAffected"`
}

func toTableResults(res *domain.CompositeResult) []tableResultResponse {
	if res == nil {
		return []tableResultResponse{}
	}
	out := make([]tableResultResponse, 0, len(res.Tables))
	for _, t := range res.Tables {
		out = append(out, tableResultResponse{
			Table:        string(t.Table),
			RowsAffected: t.RowsAffected,
			Failed:       t.Err != nil,
		})
	}
	return out
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}

// observe counts a finished mutation by outcome.
func observe(operation string, err error) {
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case domain.IsValidation(err),
		errors.Is(err, domain.ErrInvalidParameters),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrDuplicateCategory):
		outcome = metrics.OutcomeInvalid
	default:
		outcome = metrics.OutcomeFailure
	}
	metrics.MutationsTotal.WithLabelValues(operation, outcome).Inc()
}

// observeUnchanged counts a mutation that completed without changing rows.
func observeUnchanged(operation string) {
	metrics.MutationsTotal.WithLabelValues(operation, metrics.OutcomeFailure).Inc()
}
