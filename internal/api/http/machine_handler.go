package http

import (
	"net/http"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/service"
)

type MachineHandler struct {
	machines service.MachineService
}

func NewMachineHandler(machines service.MachineService) *MachineHandler {
	return &MachineHandler{machines: machines}
}

func (h *MachineHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var brand domain.Brand
	if !decodeBody(w, r, &brand) {
		return
	}
	if err := h.machines.CreateBrand(r.Context(), &brand); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, brand)
}

func (h *MachineHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.machines.ListBrands(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

func (h *MachineHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.machines.DeleteBrand(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MachineHandler) CreateModel(w http.ResponseWriter, r *http.Request) {
	var model domain.Model
	if !decodeBody(w, r, &model) {
		return
	}
	if err := h.machines.CreateModel(r.Context(), &model); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, model)
}

func (h *MachineHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	brandID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	models, err := h.machines.ListModels(r.Context(), brandID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models)
}

func (h *MachineHandler) DeleteModel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.machines.DeleteModel(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MachineHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.MachineCategory
	if !decodeBody(w, r, &category) {
		return
	}
	if err := h.machines.CreateCategory(r.Context(), &category); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *MachineHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.machines.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
