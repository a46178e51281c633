package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"mowerworks-backend/internal/logger"
	"mowerworks-backend/internal/pricing"
	"mowerworks-backend/internal/security"
	"mowerworks-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// pagedResponse wraps list endpoints with their total row count.
type pagedResponse struct {
	Items interface{} `json:"items"`
	Total int32       `json:"total"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps service errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, sql.ErrNoRows):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, security.ErrWrongTokenType):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidStatusTransition),
		errors.Is(err, service.ErrJobClosed):
		status = http.StatusConflict
	case errors.Is(err, service.ErrCustomerRequired),
		errors.Is(err, service.ErrCustomerHasNoEmail),
		errors.Is(err, service.ErrCustomerNameRequired),
		errors.Is(err, service.ErrPartSKURequired),
		errors.Is(err, service.ErrNegativePrice),
		errors.Is(err, service.ErrInvalidPeriod),
		errors.Is(err, pricing.ErrUnknownSizeTier),
		errors.Is(err, pricing.ErrUnknownSharpenType),
		errors.Is(err, pricing.ErrUnknownBarSize),
		errors.Is(err, pricing.ErrUnknownChainsawMode),
		errors.Is(err, pricing.ErrUnknownHedgeTrimmer),
		errors.Is(err, pricing.ErrUnknownDiscountType),
		errors.Is(err, pricing.ErrInvalidQuantity):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// pathID reads an int32 path variable, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid " + name})
		return 0, false
	}
	return int32(id), true
}

func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 {
		pageSize = int32(v)
	}
	return page, pageSize
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
