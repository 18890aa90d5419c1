package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/questx-lab/person-api/pkg/errorx"
	"github.com/questx-lab/person-api/pkg/router"
	"github.com/questx-lab/person-api/pkg/xcontext"
)

const RequestIDHeader = "X-Request-ID"

// WithRequestID reuses the request id sent by the client or generates a new one, and
// echoes it in the response.
func WithRequestID() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		id := ""
		if req := xcontext.HTTPRequest(ctx); req != nil {
			id = req.Header.Get(RequestIDHeader)
		}

		if id == "" {
			id = uuid.NewString()
		}

		if w := xcontext.ResponseWriter(ctx); w != nil {
			w.Header().Set(RequestIDHeader, id)
		}

		return xcontext.WithRequestID(ctx, id), nil
	}
}

func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		info := fmt.Sprintf("%s | %s %s | %d", xcontext.RequestID(ctx),
			req.Method, req.URL.Path, xcontext.Status(ctx))
		if start := xcontext.StartTime(ctx); !start.IsZero() {
			info = fmt.Sprintf("%s | %s", info, time.Since(start))
		}

		if err := xcontext.Error(ctx); err != nil {
			var errx errorx.Error
			if errors.As(err, &errx) {
				xcontext.Logger(ctx).Warnf("%s | %d | %s", info, errx.Code, errx.Message)
			} else {
				xcontext.Logger(ctx).Errorf("%s | %d | %v", info, -1, err)
			}
		} else {
			xcontext.Logger(ctx).Infof("%s", info)
		}
	}
}
