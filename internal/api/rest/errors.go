package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondAPIError(c, errors.NewBadRequestError(message, details...))
}

// respondError responds with the API error that err maps to
func respondError(c *gin.Context, err error, message string) {
	apiErr := errors.FromError(err, message)
	if apiErr.StatusCode() >= 500 {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path),
			zap.String("code", string(apiErr.Code)),
		)
	}
	respondAPIError(c, apiErr)
}

func respondAPIError(c *gin.Context, apiErr *errors.APIError) {
	c.JSON(apiErr.StatusCode(), apiErr)
}
