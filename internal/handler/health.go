package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/questx-lab/person-api/pkg/xcontext"
)

const pingTimeout = 2 * time.Second

type HealthRequest struct{}

type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (r *HealthResponse) Respond(http.Header) (int, any) {
	if r.Error != "" {
		return http.StatusServiceUnavailable, r
	}

	return http.StatusOK, r
}

// Health reports whether the database answers a ping.
func Health(ctx context.Context, _ *HealthRequest) (*HealthResponse, error) {
	db, err := xcontext.DB(ctx).DB()
	if err != nil {
		return unhealthy(ctx, err), nil
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return unhealthy(ctx, err), nil
	}

	return &HealthResponse{Status: "healthy"}, nil
}

func unhealthy(ctx context.Context, err error) *HealthResponse {
	xcontext.Logger(ctx).Warnf("Health check failed: %v", err)
	return &HealthResponse{Status: "unhealthy", Error: err.Error()}
}
