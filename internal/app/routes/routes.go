package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/app/controllers"
	"github.com/yigit/academics/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	academicController *controllers.AcademicController,
	courseController *controllers.CourseController,
	registryController *controllers.RegistryController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/academics", academicController.CreateAcademic)
	v1.DELETE("/registry", registryController.Clear)
	v1.GET("/health", registryController.Health)

	// --- Routes that need a registered requester ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireAcademic())
	{
		academics := authenticated.Group("/academics")
		{
			academics.GET("", academicController.ListAcademics)
			academics.GET("/:id", academicController.GetAcademicDetails)
		}

		courses := authenticated.Group("/courses")
		{
			courses.POST("", courseController.CreateCourse)
			courses.GET("", courseController.ListCourses)
			courses.GET("/:id", courseController.GetCourseDetails)
			courses.POST("/:id/enrolments", courseController.Enrol)
		}
	}
}
