// Package http exposes the shop's JSON API. Routes live under /api/v1;
// everything except login and token refresh requires a bearer token, and
// user management plus rate-schedule changes require the admin role.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"mowerworks-backend/internal/security"
	"mowerworks-backend/internal/service"
)

type Services struct {
	Auth     service.AuthService
	Customer service.CustomerService
	Machine  service.MachineService
	Part     service.PartService
	Job      service.JobService
	Report   service.ReportService
}

func NewRouter(tokens security.TokenManager, svc Services) *mux.Router {
	authH := NewAuthHandler(svc.Auth)
	customerH := NewCustomerHandler(svc.Customer, svc.Job)
	machineH := NewMachineHandler(svc.Machine)
	partH := NewPartHandler(svc.Part)
	jobH := NewJobHandler(svc.Job)
	reportH := NewReportHandler(svc.Report)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/login", authH.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authH.Refresh).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokens))

	protected.HandleFunc("/auth/password", authH.ChangePassword).Methods(http.MethodPut)
	protected.HandleFunc("/users", RequireAdmin(authH.CreateUser)).Methods(http.MethodPost)
	protected.HandleFunc("/users", RequireAdmin(authH.ListUsers)).Methods(http.MethodGet)

	protected.HandleFunc("/customers", customerH.Create).Methods(http.MethodPost)
	protected.HandleFunc("/customers", customerH.List).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{id}", customerH.Get).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{id}", customerH.Update).Methods(http.MethodPut)
	protected.HandleFunc("/customers/{id}", customerH.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/customers/{id}/jobs", customerH.ListJobs).Methods(http.MethodGet)

	protected.HandleFunc("/brands", machineH.CreateBrand).Methods(http.MethodPost)
	protected.HandleFunc("/brands", machineH.ListBrands).Methods(http.MethodGet)
	protected.HandleFunc("/brands/{id}", machineH.DeleteBrand).Methods(http.MethodDelete)
	protected.HandleFunc("/brands/{id}/models", machineH.ListModels).Methods(http.MethodGet)
	protected.HandleFunc("/models", machineH.CreateModel).Methods(http.MethodPost)
	protected.HandleFunc("/models/{id}", machineH.DeleteModel).Methods(http.MethodDelete)
	protected.HandleFunc("/categories", machineH.CreateCategory).Methods(http.MethodPost)
	protected.HandleFunc("/categories", machineH.ListCategories).Methods(http.MethodGet)

	protected.HandleFunc("/parts", partH.Create).Methods(http.MethodPost)
	protected.HandleFunc("/parts", partH.List).Methods(http.MethodGet)
	protected.HandleFunc("/parts/{id}", partH.Get).Methods(http.MethodGet)
	protected.HandleFunc("/parts/{id}", partH.Update).Methods(http.MethodPut)
	protected.HandleFunc("/parts/{id}", partH.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/parts/{id}/stock", partH.AdjustStock).Methods(http.MethodPost)

	protected.HandleFunc("/jobs/quote", jobH.Quote).Methods(http.MethodPost)
	protected.HandleFunc("/jobs/lookup", jobH.GetByReference).Methods(http.MethodGet)
	protected.HandleFunc("/jobs", jobH.Create).Methods(http.MethodPost)
	protected.HandleFunc("/jobs", jobH.List).Methods(http.MethodGet)
	protected.HandleFunc("/jobs/{id}", jobH.Get).Methods(http.MethodGet)
	protected.HandleFunc("/jobs/{id}", jobH.Update).Methods(http.MethodPut)
	protected.HandleFunc("/jobs/{id}/status", jobH.UpdateStatus).Methods(http.MethodPut)
	protected.HandleFunc("/jobs/{id}/recover-totals", jobH.RecoverTotals).Methods(http.MethodPost)
	protected.HandleFunc("/jobs/{id}/email-quote", jobH.EmailQuote).Methods(http.MethodPost)

	protected.HandleFunc("/transport-config", jobH.GetTransportConfig).Methods(http.MethodGet)
	protected.HandleFunc("/transport-config", RequireAdmin(jobH.UpdateTransportConfig)).Methods(http.MethodPut)

	protected.HandleFunc("/reports/revenue", reportH.Revenue).Methods(http.MethodGet)
	protected.HandleFunc("/reports/status-counts", reportH.StatusCounts).Methods(http.MethodGet)

	return r
}
