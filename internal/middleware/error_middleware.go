package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

// HandleAPIError maps a service error to a status code and the error envelope.
func HandleAPIError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, dto.ErrorCodeInternalServer
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status, code = http.StatusNotFound, dto.ErrorCodeResourceNotFound
	case errors.Is(err, apperrors.ErrConflict):
		status, code = http.StatusConflict, dto.ErrorCodeResourceAlreadyExists
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		status, code = http.StatusBadRequest, dto.ErrorCodeValidationFailed
	}

	detail := dto.NewErrorDetail(code, "Internal server error")
	if status == http.StatusInternalServerError {
		logger.Ctx(c.Request.Context()).Error().Err(err).Msg("Unhandled error")
	} else {
		detail.Message = err.Error()
		var custom *apperrors.CustomError
		if errors.As(err, &custom) {
			if field, ok := custom.Details["field"].(string); ok {
				detail.WithField(field)
			}
		}
	}

	AbortWithError(c, status, detail)
}

// HandleBindingError reports a request body or parameter that failed to bind.
func HandleBindingError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = formatValidationError(fe)
		}
		detail.Message = "Validation failed"
		detail.WithDetails(fields)
		if len(verrs) == 1 {
			detail.WithField(verrs[0].Field())
		}
	} else {
		detail.WithDetails(err.Error())
	}

	AbortWithError(c, http.StatusBadRequest, detail)
}

// AbortWithError writes the error envelope, tagged with the request id when one was assigned.
func AbortWithError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	resp := dto.NewErrorResponse(detail)
	resp.RequestID = GetRequestID(c)
	c.AbortWithStatusJSON(status, resp)
}
