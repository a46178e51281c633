package http

import (
	"net/http"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/service"
)

type PartHandler struct {
	parts service.PartService
}

func NewPartHandler(parts service.PartService) *PartHandler {
	return &PartHandler{parts: parts}
}

func (h *PartHandler) Create(w http.ResponseWriter, r *http.Request) {
	var part domain.Part
	if !decodeBody(w, r, &part) {
		return
	}
	if err := h.parts.CreatePart(r.Context(), &part); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, part)
}

func (h *PartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	part, err := h.parts.GetPart(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, part)
}

func (h *PartHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var part domain.Part
	if !decodeBody(w, r, &part) {
		return
	}
	part.ID = id
	if err := h.parts.UpdatePart(r.Context(), &part); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, part)
}

func (h *PartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.parts.DeletePart(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *PartHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	parts, total, err := h.parts.ListParts(r.Context(), r.URL.Query().Get("q"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: parts, Total: total})
}

type adjustStockRequest struct {
	Delta int32 `json:"delta"`
}

func (h *PartHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req adjustStockRequest
	if !decodeBody(w, r, &req) {
		return
	}
	part, err := h.parts.AdjustStock(r.Context(), id, req.Delta)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, part)
}
