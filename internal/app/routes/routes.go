package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ayeshchamikara/gradepoint/internal/app/controllers"
	"github.com/ayeshchamikara/gradepoint/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	transcriptController *controllers.TranscriptController,
	profileController *controllers.ProfileController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Transcript routes ---
	v1.GET("/transcript", transcriptController.GetTranscript)
	v1.GET("/grades", transcriptController.GetGrades)

	years := v1.Group("/years")
	{
		years.POST("", transcriptController.AddYear)
		years.DELETE("/:yearId", transcriptController.DeleteYear)
		years.PUT("/:yearId/expanded", transcriptController.SetYearExpanded)

		semesters := years.Group("/:yearId/semesters")
		{
			semesters.POST("", transcriptController.AddSemester)
			semesters.DELETE("/:semesterId", transcriptController.DeleteSemester)

			courses := semesters.Group("/:semesterId/courses")
			{
				courses.POST("", transcriptController.AddCourse)
				courses.PUT("/:courseId", transcriptController.UpdateCourse)
				courses.DELETE("/:courseId", transcriptController.RemoveCourse)
			}
		}
	}

	// --- Profile routes ---
	profile := v1.Group("/profile")
	{
		profile.GET("", profileController.GetProfile)
		profile.PUT("", profileController.SaveProfile)
		profile.DELETE("", profileController.DeleteProfile)
		profile.POST("/photo", profileController.UploadPhoto)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
