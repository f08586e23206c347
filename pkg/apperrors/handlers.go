package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorEnvelope is the failure shape of the API envelope:
// { success: false, message, errors? }.
type ErrorEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// HandleError writes err as a JSON error envelope. Non-AppError values are
// treated as internal errors and reported with a generic message.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error(), "path", c.Request.URL.Path)
	}

	c.JSON(appErr.HTTPCode, ErrorEnvelope{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Details,
	})
}

// AsAppError unwraps err into *AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
