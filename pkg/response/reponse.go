package response

import (
	"errors"
	"net/http"

	apperrors "hushhnotify/pkg/errors"

	"github.com/labstack/echo/v4"
)

// Response is the callable-function envelope: exactly one of Result or Error
// is set.
type Response struct {
	Result interface{} `json:"result,omitempty"`
	Error  *ErrorInfo  `json:"error,omitempty"`
}

type ErrorInfo struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{Result: data})
}

func Error(c echo.Context, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, Response{
			Error: &ErrorInfo{
				Status:  appErr.Code,
				Message: appErr.Message,
			},
		})
	}

	return c.JSON(http.StatusInternalServerError, Response{
		Error: &ErrorInfo{
			Status:  apperrors.CodeInternal,
			Message: "An unexpected error occurred",
		},
	})
}
