package middleware

import (
	"net/http"

	"github.com/questx-lab/person-api/internal/model"
	"github.com/rs/cors"
)

// AllowCors lets the browser client call the API from the given origins and read the
// pagination headers.
func AllowCors(allowedOrigins []string, h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", RequestIDHeader},
		ExposedHeaders: []string{
			"Location", RequestIDHeader,
			model.TotalCountHeader, model.PageNumberHeader, model.PageSizeHeader,
		},
	}).Handler(h)
}
