package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/instamakaan/instamakaan/internal/shared/constants"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse represents a paginated list response
type ListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	msg := "Resource created successfully"
	if len(message) > 0 {
		msg = message[0]
	}
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
		Message: msg,
	})
}

// ErrorResponse sends a plain error envelope with the given status code.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   &ErrorInfo{Type: "error", Message: message},
	})
}

// ErrorResponseWithError renders err using its AppError type and code.
// Anything else becomes a generic 500 so driver messages never reach clients.
func ErrorResponseWithError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	info := ErrorInfo{
		Type:    string(errors.ErrorTypeInternal),
		Message: constants.ErrMsgInternalServerError,
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		statusCode = appErr.Code
		info = ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	c.JSON(statusCode, APIResponse{Success: false, Error: &info})
}

func ListSuccessResponse(c *gin.Context, items interface{}, total int64, page, pageSize int, message ...string) {
	resp := APIResponse{
		Success: true,
		Data: ListResponse{
			Items:      items,
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: TotalPages(total, pageSize),
		},
	}
	if len(message) > 0 {
		resp.Message = message[0]
	}
	c.JSON(http.StatusOK, resp)
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
