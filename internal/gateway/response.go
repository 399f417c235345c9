package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/avshopgw/internal/rpc"
)

// writeUpstreamError translates an upstream call failure into an HTTP
// error response. Remote application errors keep their cleaned message
// and gRPC code; anything else becomes a generic 500 so internal
// details do not leak to clients.
func writeUpstreamError(c *gin.Context, logger *zap.Logger, err error) {
	re := rpc.FromError(err)
	if re == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "An unexpected error occurred",
		})
		return
	}

	if rpc.IsRemote(re) {
		status := rpc.HTTPStatus(re.Code)
		if status >= http.StatusInternalServerError {
			logger.Error("upstream call failed",
				zap.String("path", c.Request.URL.Path),
				zap.String("code", re.Code.String()),
				zap.Error(err),
			)
		} else {
			logger.Debug("upstream call rejected",
				zap.String("path", c.Request.URL.Path),
				zap.String("code", re.Code.String()),
			)
		}
		c.JSON(status, gin.H{
			"success": false,
			"message": rpc.CleanMessage(re.Message),
			"code":    re.Code.String(),
		})
		return
	}

	logger.Error("upstream call failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(rpc.HTTPStatus(re.Code), gin.H{
		"success": false,
		"message": "An unexpected error occurred",
		"code":    re.Code.String(),
	})
}

// badRequest writes a 400 response with the given message.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
	})
}
