package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/studentrecords/internal/app/services"
)

// SystemInfoController serves the diagnostics snapshot.
type SystemInfoController struct {
	systemInfoService *services.SystemInfoService
}

func NewSystemInfoController(systemInfoService *services.SystemInfoService) *SystemInfoController {
	return &SystemInfoController{systemInfoService: systemInfoService}
}

// GetSystemInfo reports runtime, database and cluster details.
// Failures are embedded in the body, so the status is always 200.
// @Summary Runtime diagnostics
// @Tags diagnostics
// @Produce json
// @Success 200 {object} models.SystemInfo
// @Router /systeminfo [get]
func (c *SystemInfoController) GetSystemInfo(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.systemInfoService.GetSystemInfo(ctx.Request.Context()))
}
