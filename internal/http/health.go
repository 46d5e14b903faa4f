package http

import (
	"net/http"
	"time"
)

type healthStatus struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
	Uptime string    `json:"uptime"`
}

func (api *SiteAPI) handleHealth(w http.ResponseWriter, _ *http.Request) {
	now := api.now()
	writeJSON(w, http.StatusOK, success(healthStatus{
		Status: "ok",
		Time:   now.UTC(),
		Uptime: now.Sub(api.started).Round(time.Second).String(),
	}))
}
