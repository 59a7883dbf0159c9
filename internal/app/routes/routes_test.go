package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yigit/studentrecords/internal/app/controllers"
	"github.com/yigit/studentrecords/internal/app/services"
)

func TestSetupRouter_RegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRouter(router, Controllers{
		Student:    controllers.NewStudentController(nil),
		Course:     controllers.NewCourseController(nil),
		Department: controllers.NewDepartmentController(nil),
		Enrollment: controllers.NewEnrollmentController(nil),
		SystemInfo: controllers.NewSystemInfoController(services.NewSystemInfoService(services.SystemInfoConfig{}, nil, nil)),
	})

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /api/systeminfo",
		"GET /api/health",
		"GET /api/students/:id/enrollments",
		"GET /api/courses/:id/enrollments",
		"DELETE /api/departments/:id",
		"PUT /api/enrollments/:id",
		"GET /metrics",
		"GET /ping",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestSetupRouter_PingAndSystemInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("POD_NAME", "")
	router := gin.New()
	SetupRouter(router, Controllers{
		SystemInfo: controllers.NewSystemInfoController(services.NewSystemInfoService(services.SystemInfoConfig{AppVersion: "1.0.0"}, nil, nil)),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pong")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/systeminfo", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"databaseStatus":"Disconnected"`)
}
