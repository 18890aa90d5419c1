package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/person-api/pkg/errorx"
	"github.com/questx-lab/person-api/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := router.newContext(c)

		defer func() {
			if recovered := recover(); recovered != nil {
				xcontext.Logger(ctx).Errorf("Panic when serving %s: %v", c.Request.URL.Path, recovered)
				ctx = writeError(ctx, c, errorx.Unknown)
			}

			for _, closer := range router.closers {
				closer(ctx)
			}
		}()

		var err error
		for _, before := range router.befores {
			ctx, err = before(ctx)
			if err != nil {
				ctx = writeError(ctx, c, err)
				return
			}
		}

		var req Request
		if err := bind(c, method, &req); err != nil {
			ctx = writeError(ctx, c, err)
			return
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			ctx = writeError(ctx, c, err)
			return
		}

		if resp == nil {
			c.Status(http.StatusOK)
			ctx = xcontext.WithStatus(ctx, http.StatusOK)
			return
		}

		ctx = xcontext.WithStatus(ctx, writeResponse(c, resp))
	}
}

func (r *Router) newContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	ctx = xcontext.WithDB(ctx, r.db)
	ctx = xcontext.WithConfigs(ctx, r.cfg)
	ctx = xcontext.WithLogger(ctx, r.logger)
	ctx = xcontext.WithHTTPRequest(ctx, c.Request)
	ctx = xcontext.WithResponseWriter(ctx, c.Writer)
	ctx = xcontext.WithRoute(ctx, c.FullPath())
	return ctx
}

func bind(c *gin.Context, method string, req any) error {
	var err error
	switch method {
	case http.MethodGet, http.MethodDelete:
		err = c.ShouldBindQuery(req)
	case http.MethodPost, http.MethodPut:
		err = c.ShouldBindJSON(req)
	default:
		err = errors.New("unsupported method")
	}
	if err != nil {
		return toBadRequest(err)
	}

	if len(c.Params) > 0 {
		if err := c.ShouldBindUri(req); err != nil {
			return toBadRequest(err)
		}
	}

	return nil
}

func writeError(ctx context.Context, c *gin.Context, err error) context.Context {
	resp := newErrorResponse(err)
	status := errorx.HTTPStatus(errorx.Code(resp.Code))

	var errx errorx.Error
	if !errors.As(err, &errx) {
		xcontext.Logger(ctx).Errorf("Unexpected error when serving %s: %v", c.Request.URL.Path, err)
	}

	if !c.Writer.Written() {
		c.JSON(status, resp)
	}

	ctx = xcontext.WithError(ctx, err)
	return xcontext.WithStatus(ctx, status)
}
