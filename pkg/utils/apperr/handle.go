package apperr

import (
	"context"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/model"
)

// Handle logs an application error. Rejected user input is logged as a warning.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		logger = logger.With("request_id", reqID)
	}

	if goerr.HasTag(err, model.ErrTagInvalidInput) {
		logger.Warn("invalid input", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
