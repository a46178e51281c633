package http

import (
	"net/http"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/service"
)

type JobHandler struct {
	jobs service.JobService
}

func NewJobHandler(jobs service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// jobResponse bundles a job with its child rows for detail endpoints.
type jobResponse struct {
	Job          *domain.Job          `json:"job"`
	Parts        []domain.JobPart     `json:"parts"`
	SharpenItems []domain.SharpenItem `json:"sharpen_items"`
}

// Quote prices a draft without saving anything.
func (h *JobHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var draft service.JobDraft
	if !decodeBody(w, r, &draft) {
		return
	}
	quote, err := h.jobs.QuoteJob(r.Context(), &draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

type createJobRequest struct {
	service.JobDraft
	Status domain.JobStatus `json:"status"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if !decodeBody(w, r, &req) {
		return
	}
	job, err := h.jobs.CreateJob(r.Context(), &req.JobDraft, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var draft service.JobDraft
	if !decodeBody(w, r, &draft) {
		return
	}
	job, err := h.jobs.UpdateJob(r.Context(), id, &draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	job, parts, items, err := h.jobs.GetJob(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobResponse{Job: job, Parts: parts, SharpenItems: items})
}

func (h *JobHandler) GetByReference(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")
	if reference == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "reference is required"})
		return
	}
	job, parts, items, err := h.jobs.GetJobByReference(r.Context(), reference)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobResponse{Job: job, Parts: parts, SharpenItems: items})
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	jobs, total, err := h.jobs.ListJobs(r.Context(), r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: jobs, Total: total})
}

type updateStatusRequest struct {
	Status domain.JobStatus `json:"status"`
}

func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	job, err := h.jobs.UpdateJobStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// EmailQuote sends the customer their priced quote.
func (h *JobHandler) EmailQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.jobs.EmailQuote(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// RecoverTotals re-prices a job from its stored line items.
func (h *JobHandler) RecoverTotals(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	job, err := h.jobs.RecoverTotals(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) GetTransportConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.jobs.GetTransportConfig(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *JobHandler) UpdateTransportConfig(w http.ResponseWriter, r *http.Request) {
	var cfg domain.TransportConfig
	if !decodeBody(w, r, &cfg) {
		return
	}
	if err := h.jobs.UpdateTransportConfig(r.Context(), &cfg); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}
