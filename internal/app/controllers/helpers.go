package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/middleware"
)

// parseIDParam reads the :id path parameter and writes a 400 when it is not a positive integer.
func parseIDParam(ctx *gin.Context, entity string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+entity+" ID").
			WithField("id").
			WithDetails(entity + " ID must be a positive integer")
		middleware.AbortWithError(ctx, http.StatusBadRequest, errorDetail)
		return 0, false
	}
	return id, true
}

func invalidDate(ctx *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date").WithDetails(err.Error())
	middleware.AbortWithError(ctx, http.StatusBadRequest, errorDetail)
}
