package middleware

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/NomadCrew/travel-timeline-backend/errors"
	"github.com/NomadCrew/travel-timeline-backend/logger"
	"github.com/NomadCrew/travel-timeline-backend/types"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached to the context as an
// ErrorResponse. Handlers report failures with c.Error and return.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ginErr := c.Errors.Last()
		err := ginErr.Err

		var appError *errors.AppError
		if stderrors.As(err, &appError) {
			statusCode := appError.GetHTTPStatus()
			logger.LogHTTPError(c, err, statusCode, fmt.Sprintf("%s error", appError.Type))

			response := types.ErrorResponse{
				Type:    string(appError.Type),
				Message: appError.Message,
				Code:    strconv.Itoa(statusCode),
			}

			// Only include details for client errors or in debug mode
			if appError.Detail != "" && (gin.IsDebugging() || statusCode < http.StatusInternalServerError) {
				response.Details = appError.Detail
			}

			c.JSON(statusCode, response)
			return
		}

		// Handle Gin binding errors
		if ginErr.Type == gin.ErrorTypeBind {
			logger.LogHTTPError(c, err, http.StatusBadRequest, "Request binding error")

			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Type:    string(errors.ValidationError),
				Message: "Failed to bind request",
				Details: err.Error(),
				Code:    strconv.Itoa(http.StatusBadRequest),
			})
			return
		}

		// Handle unknown errors
		logger.LogHTTPError(c, err, http.StatusInternalServerError, "Unexpected server error")

		internal := errors.InternalServerError("Internal Server Error")
		response := types.ErrorResponse{
			Type:    string(internal.Type),
			Message: internal.Message,
			Code:    strconv.Itoa(internal.GetHTTPStatus()),
		}
		if gin.IsDebugging() {
			response.Details = err.Error()
		}

		c.JSON(internal.GetHTTPStatus(), response)
	}
}
