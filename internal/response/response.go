package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIResponse is the standard success envelope.
type APIResponse struct {
	Data      any    `json:"data"`
	Status    int    `json:"status"`
	Message   string `json:"message,omitempty"`
	Path      string `json:"path"`
	RequestID string `json:"request_id,omitempty"`
}

// APIError is the standard error envelope.
type APIError struct {
	Message   string `json:"message"`
	Error     string `json:"error"`
	Path      string `json:"path"`
	Status    int    `json:"status"`
	RequestID string `json:"request_id,omitempty"`
}

func pathFromContext(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().URL.Path
}

// requestID reads the id set by the RequestID middleware.
func requestID(c echo.Context) string {
	if c == nil || c.Response() == nil {
		return ""
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// OK sends a 200 response with data.
func OK(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, APIResponse{
		Data:      data,
		Status:    http.StatusOK,
		Message:   message,
		Path:      pathFromContext(c),
		RequestID: requestID(c),
	})
}

// Error sends a JSON error envelope with the given status.
func Error(c echo.Context, status int, message, errDetail string) error {
	return c.JSON(status, APIError{
		Message:   message,
		Error:     errDetail,
		Path:      pathFromContext(c),
		Status:    status,
		RequestID: requestID(c),
	})
}

// BadRequest sends 400 with message and error detail.
func BadRequest(c echo.Context, message, errDetail string) error {
	return Error(c, http.StatusBadRequest, message, errDetail)
}

// NotFound sends 404 with message and error detail.
func NotFound(c echo.Context, message, errDetail string) error {
	return Error(c, http.StatusNotFound, message, errDetail)
}

// TooManyRequests sends 429; used by the rate limiter.
func TooManyRequests(c echo.Context) error {
	return Error(c, http.StatusTooManyRequests, "rate limit exceeded", "too many requests")
}

// InternalError sends 500 with message and error detail.
func InternalError(c echo.Context, message, errDetail string) error {
	return Error(c, http.StatusInternalServerError, message, errDetail)
}

// HTTPErrorHandler renders echo's own errors (404 route, 405, panics
// recovered by middleware) in the APIError envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	message := http.StatusText(status)
	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}
	_ = Error(c, status, message, err.Error())
}
