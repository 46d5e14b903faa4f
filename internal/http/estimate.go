package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/goliatone/go-agency-site/internal/estimate"
)

func (api *SiteAPI) registerEstimateRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "estimate")
	mux.HandleFunc("POST "+root, api.handleEstimate)
	mux.HandleFunc("GET "+root+"/catalog", api.handleEstimateCatalog)
	mux.HandleFunc("GET "+root+"/{id}", api.handleGetEstimate)
}

func (api *SiteAPI) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if api.estimates == nil {
		writeJSON(w, http.StatusServiceUnavailable, failure("service_unavailable", "estimates are not configured", nil))
		return
	}

	body, err := api.readBody(w, r)
	if err != nil {
		api.writeError(w, r, err)
		return
	}
	if err := estimate.ValidateJSON(body); err != nil {
		api.writeError(w, r, err)
		return
	}

	var req estimate.Request
	if err := json.Unmarshal(body, &req); err != nil {
		api.writeError(w, r, badRequest(err))
		return
	}

	result, err := api.estimates.Estimate(r.Context(), req)
	if err != nil {
		api.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, success(result))
}

func (api *SiteAPI) handleGetEstimate(w http.ResponseWriter, r *http.Request) {
	if api.estimates == nil {
		writeJSON(w, http.StatusServiceUnavailable, failure("service_unavailable", "estimates are not configured", nil))
		return
	}

	// malformed ids cannot name a logged estimate
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		api.writeError(w, r, &estimate.NotFoundError{})
		return
	}

	result, err := api.estimates.Get(r.Context(), id)
	if err != nil {
		api.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, success(result))
}

func (api *SiteAPI) handleEstimateCatalog(w http.ResponseWriter, _ *http.Request) {
	if api.estimates == nil {
		writeJSON(w, http.StatusServiceUnavailable, failure("service_unavailable", "estimates are not configured", nil))
		return
	}
	writeJSON(w, http.StatusOK, success(api.estimates.Catalog()))
}
