// Package http exposes the public site API on a net/http ServeMux.
//
// Routes mount under /api by default:
//   - Content: /services, /case-studies, /blog and their /{slug} variants (?lang=nl|en)
//   - Estimates: POST /estimate, GET /estimate/catalog
//   - Contact: POST /contact
//   - Health: /health
//
// Every response uses the {success, data} envelope; failures carry
// {success: false, error, message, issues}.
package http
