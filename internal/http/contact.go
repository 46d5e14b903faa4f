package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-agency-site/internal/contact"
	"github.com/goliatone/go-agency-site/internal/validation"
)

var contactSchema = validation.MustCompile(contact.SubmissionSchema())

type contactReceipt struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (api *SiteAPI) registerContactRoutes(mux *http.ServeMux, base string) {
	mux.HandleFunc("POST "+joinPath(base, "contact"), api.handleContact)
}

func (api *SiteAPI) handleContact(w http.ResponseWriter, r *http.Request) {
	if api.contact == nil {
		writeJSON(w, http.StatusServiceUnavailable, failure("service_unavailable", "contact form is not configured", nil))
		return
	}

	body, err := api.readBody(w, r)
	if err != nil {
		api.writeError(w, r, err)
		return
	}
	if err := contactSchema.ValidateBytes(body); err != nil {
		api.writeError(w, r, err)
		return
	}

	var submission contact.Submission
	if err := json.Unmarshal(body, &submission); err != nil {
		api.writeError(w, r, badRequest(err))
		return
	}
	if submission.Lang == "" {
		submission.Lang = api.defaultLocale
	}

	record, err := api.contact.Submit(r.Context(), submission)
	if err != nil {
		api.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, success(contactReceipt{ID: record.ID, CreatedAt: record.CreatedAt}))
}
