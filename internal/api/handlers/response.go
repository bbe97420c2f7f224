package handlers

import (
	"net/http"

	apperrors "asset-allocation-backend/internal/errors"
	"asset-allocation-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SuccessResponse is the envelope of every successful API response
type SuccessResponse struct {
	Success bool        `json:"success" example:"true"`
	Count   *int        `json:"count,omitempty" example:"2"`
	Data    interface{} `json:"data"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"error message"`
}

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

func respondList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Count: &count, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Error: message})
}

// respondError maps the error taxonomy onto HTTP statuses.
// Unclassified errors are logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsInvalidArgument(err), apperrors.IsValidation(err):
		respondMessage(c, http.StatusBadRequest, err.Error())
	case apperrors.IsNotFound(err):
		respondMessage(c, http.StatusNotFound, err.Error())
	case apperrors.IsConflict(err):
		respondMessage(c, http.StatusConflict, err.Error())
	case apperrors.IsAuthentication(err):
		respondMessage(c, http.StatusUnauthorized, err.Error())
	default:
		_ = c.Error(err)
		logger.WithContext(c.Request.Context()).Errorf("Unhandled error: %v", err)
		respondMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}

// parseID reads a UUID path parameter
func parseID(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, apperrors.NewInvalidArgumentError(param, "must be a valid UUID")
	}
	return id, nil
}
