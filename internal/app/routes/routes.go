package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/studentrecords/internal/app/controllers"
	"github.com/yigit/studentrecords/internal/pkg/metrics"
)

// Controllers groups the handlers mounted by SetupRouter.
type Controllers struct {
	Student    *controllers.StudentController
	Course     *controllers.CourseController
	Department *controllers.DepartmentController
	Enrollment *controllers.EnrollmentController
	SystemInfo *controllers.SystemInfoController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	api := router.Group("/api")

	api.GET("/health", controllers.Health)
	api.GET("/systeminfo", c.SystemInfo.GetSystemInfo)

	students := api.Group("/students")
	{
		students.GET("", c.Student.ListStudents)
		students.POST("", c.Student.CreateStudent)
		students.GET("/:id", c.Student.GetStudentByID)
		students.PUT("/:id", c.Student.UpdateStudent)
		students.DELETE("/:id", c.Student.DeleteStudent)
		students.GET("/:id/enrollments", c.Student.ListStudentEnrollments)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", c.Course.ListCourses)
		courses.POST("", c.Course.CreateCourse)
		courses.GET("/:id", c.Course.GetCourseByID)
		courses.PUT("/:id", c.Course.UpdateCourse)
		courses.DELETE("/:id", c.Course.DeleteCourse)
		courses.GET("/:id/enrollments", c.Course.ListCourseEnrollments)
	}

	departments := api.Group("/departments")
	{
		departments.GET("", c.Department.GetAllDepartments)
		departments.POST("", c.Department.CreateDepartment)
		departments.GET("/:id", c.Department.GetDepartmentByID)
		departments.PUT("/:id", c.Department.UpdateDepartment)
		departments.DELETE("/:id", c.Department.DeleteDepartment)
	}

	enrollments := api.Group("/enrollments")
	{
		enrollments.GET("", c.Enrollment.ListEnrollments)
		enrollments.POST("", c.Enrollment.CreateEnrollment)
		enrollments.GET("/:id", c.Enrollment.GetEnrollmentByID)
		enrollments.PUT("/:id", c.Enrollment.UpdateEnrollment)
		enrollments.DELETE("/:id", c.Enrollment.DeleteEnrollment)
	}

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}
