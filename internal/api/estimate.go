package api

import (
	"errors"
	"net/http"

	"github.com/teemo-ai/estimation-server/internal/app"
	"github.com/teemo-ai/estimation-server/internal/services/estimation"
	"github.com/teemo-ai/estimation-server/internal/services/storage"
	"github.com/teemo-ai/estimation-server/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Estimate handles POST /estimate. It resolves the input text, calls the
// estimation client, persists the result, and returns the response envelope.
func Estimate(c *gin.Context) {
	a := c.MustGet("app").(*app.App)

	var req types.EstimateRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, "failed to parse request body")
		return
	}

	if req.ParamsContent == "" && req.ParamsPath == "" {
		badRequest(c, "one of params_content or params_path is required")
		return
	}
	if req.ParamsContent != "" && req.ParamsPath != "" {
		badRequest(c, "params_content and params_path are mutually exclusive")
		return
	}
	if req.OutputPath == "" {
		badRequest(c, "output_path is required")
		return
	}

	requestID := uuid.NewString()
	log := a.Logger.With(zap.String("request_id", requestID))
	ctx := c.Request.Context()

	params := req.ParamsContent
	if req.ParamsPath != "" {
		content, err := a.Storage.Read(ctx, req.ParamsPath)
		if err != nil {
			log.Error("failed to read params", zap.String("path", req.ParamsPath), zap.Error(err))
			writeError(c, err)
			return
		}
		params = content
	}

	log.Info("running estimation",
		zap.String("output_path", req.OutputPath),
		zap.Int("params_bytes", len(params)))

	result, err := a.Estimator.Estimate(ctx, params, estimation.Options{
		APIKey: req.APIKey,
		Debug:  req.Debug,
	})
	if err != nil {
		log.Error("estimation failed", zap.Error(err))
		writeError(c, err)
		return
	}

	if err := a.Storage.Write(ctx, req.OutputPath, result); err != nil {
		log.Error("failed to write result", zap.String("path", req.OutputPath), zap.Error(err))
		writeError(c, err)
		return
	}

	log.Info("estimation completed", zap.String("output_path", req.OutputPath))
	c.JSON(http.StatusOK, types.ResponseEnvelope{
		Status:     types.StatusSuccess,
		Message:    "Estimation completed successfully",
		OutputPath: req.OutputPath,
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, types.ResponseEnvelope{
		Status:  types.StatusError,
		Message: message,
	})
}

// writeError converts an inner failure into the uniform error envelope with
// an HTTP status matching the failure category.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, storage.ErrInvalidPath):
		status = http.StatusBadRequest
	case errors.Is(err, estimation.ErrUpstream), errors.Is(err, estimation.ErrNoJSON):
		status = http.StatusBadGateway
	}

	c.JSON(status, types.ResponseEnvelope{
		Status:  types.StatusError,
		Message: err.Error(),
	})
}
