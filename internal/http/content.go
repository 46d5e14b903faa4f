package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-agency-site/internal/content"
)

func (api *SiteAPI) registerContentRoutes(mux *http.ServeMux, base string) {
	for _, kind := range content.Kinds() {
		root := joinPath(base, kind.Dir())
		mux.HandleFunc("GET "+root, api.handleContentList(kind))
		mux.HandleFunc("GET "+root+"/{slug}", api.handleContentGet(kind))
	}
}

func (api *SiteAPI) handleContentList(kind content.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if api.content == nil {
			writeJSON(w, http.StatusServiceUnavailable, failure("service_unavailable", "content is not configured", nil))
			return
		}
		items, err := api.content.List(r.Context(), kind, api.locale(r))
		if err != nil {
			api.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, success(items))
	}
}

func (api *SiteAPI) handleContentGet(kind content.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if api.content == nil {
			writeJSON(w, http.StatusServiceUnavailable, failure("service_unavailable", "content is not configured", nil))
			return
		}
		item, err := api.content.Get(r.Context(), kind, r.PathValue("slug"), api.locale(r))
		if err != nil {
			api.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, success(item))
	}
}

func (api *SiteAPI) locale(r *http.Request) string {
	if lang := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("lang"))); lang != "" {
		return lang
	}
	return api.defaultLocale
}
