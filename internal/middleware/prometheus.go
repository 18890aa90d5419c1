package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/questx-lab/person-api/internal/common"
	"github.com/questx-lab/person-api/pkg/router"
	"github.com/questx-lab/person-api/pkg/xcontext"
)

func WithStartTime() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		return xcontext.WithStartTime(ctx, time.Now()), nil
	}
}

func Prometheus() router.CloserFunc {
	return func(ctx context.Context) {
		startTime := xcontext.StartTime(ctx)
		method := xcontext.HTTPRequest(ctx).Method
		route := xcontext.Route(ctx)
		code := fmt.Sprint(xcontext.Status(ctx))

		for key, counter := range common.PromCounters {
			switch key {
			case common.HTTPRequestTotal:
				counter.WithLabelValues(method, route, code).Inc()
			}
		}

		if startTime.IsZero() {
			return
		}

		for key, histogram := range common.PromHistograms {
			switch key {
			case common.HTTPRequestDurationSeconds:
				histogram.WithLabelValues(method, route, code).Observe(time.Since(startTime).Seconds())
			}
		}
	}
}
