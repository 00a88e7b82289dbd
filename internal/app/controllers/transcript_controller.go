package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ayeshchamikara/gradepoint/internal/app/gpa"
	"github.com/ayeshchamikara/gradepoint/internal/app/models"
	"github.com/ayeshchamikara/gradepoint/internal/app/models/dto"
	"github.com/ayeshchamikara/gradepoint/internal/app/services"
	"github.com/ayeshchamikara/gradepoint/internal/app/state"
	"github.com/ayeshchamikara/gradepoint/internal/middleware"
	"github.com/ayeshchamikara/gradepoint/internal/pkg/apperrors"
)

// TranscriptController handles the year/semester/course hierarchy and the
// GPA summaries derived from it.
type TranscriptController struct {
	transcriptService services.TranscriptService
}

// NewTranscriptController creates a new TranscriptController
func NewTranscriptController(transcriptService services.TranscriptService) *TranscriptController {
	return &TranscriptController{
		transcriptService: transcriptService,
	}
}

// buildTranscript assembles the render model: the hierarchy with GPAs
// recomputed at semester, year, and cumulative scope.
func buildTranscript(years []models.Year, expanded map[int64]bool) dto.TranscriptResponse {
	views := make([]dto.YearView, 0, len(years))
	for _, year := range years {
		semesters := make([]dto.SemesterView, 0, len(year.Semesters))
		for _, sem := range year.Semesters {
			courses := make([]dto.CourseView, 0, len(sem.Courses))
			for _, course := range sem.Courses {
				courses = append(courses, dto.CourseView{
					ID:      course.ID,
					Name:    course.Name,
					Grade:   course.Grade,
					Credits: course.Credits,
				})
			}
			semesters = append(semesters, dto.SemesterView{
				ID:      sem.ID,
				Name:    sem.Name,
				GPA:     gpa.Semester(sem),
				Courses: courses,
			})
		}
		views = append(views, dto.YearView{
			ID:        year.ID,
			Name:      year.Name,
			Expanded:  expanded[year.ID],
			GPA:       gpa.Year(year),
			Semesters: semesters,
		})
	}
	return dto.TranscriptResponse{
		Years:         views,
		CumulativeGPA: gpa.Cumulative(years),
	}
}

// parseIDParam parses a numeric path parameter, writing the standard
// validation envelope on failure.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// GetTranscript returns the full hierarchy with GPA summaries
// @Summary Get the transcript
// @Description Retrieves all years with per-semester, per-year, and cumulative GPA
// @Tags transcript
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.TranscriptResponse} "Transcript retrieved successfully"
// @Router /transcript [get]
func (c *TranscriptController) GetTranscript(ctx *gin.Context) {
	years := c.transcriptService.Years()
	expanded := c.transcriptService.ExpandedYears()

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      buildTranscript(years, expanded),
		Timestamp: time.Now(),
	})
}

// GetGrades returns the fixed grade table
// @Summary Get the grading scale
// @Description Retrieves the fixed letter grade to point value table
// @Tags transcript
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.GradeEntry} "Grading scale retrieved successfully"
// @Router /grades [get]
func (c *TranscriptController) GetGrades(ctx *gin.Context) {
	grades := models.AllGrades()
	entries := make([]dto.GradeEntry, 0, len(grades))
	for _, g := range grades {
		entries = append(entries, dto.GradeEntry{Grade: g, Points: g.Points()})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      entries,
		Timestamp: time.Now(),
	})
}

// AddYear creates a new year
// @Summary Add a year
// @Description Appends a new year with two default semesters
// @Tags transcript
// @Produce json
// @Success 201 {object} dto.APIResponse{data=models.Year} "Year created successfully"
// @Router /years [post]
func (c *TranscriptController) AddYear(ctx *gin.Context) {
	year := c.transcriptService.AddYear(ctx)

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      year,
		Timestamp: time.Now(),
	})
}

// DeleteYear deletes a year
// @Summary Delete a year
// @Description Removes a year with all its semesters and courses
// @Tags transcript
// @Produce json
// @Param yearId path int true "Year ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Year deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Year not found"
// @Router /years/{yearId} [delete]
func (c *TranscriptController) DeleteYear(ctx *gin.Context) {
	yearID, ok := parseIDParam(ctx, "yearId")
	if !ok {
		return
	}

	if err := c.transcriptService.DeleteYear(ctx, yearID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}

// SetYearExpanded sets a year's expand/collapse state
// @Summary Expand or collapse a year
// @Description Records whether the year's semesters are shown in the UI
// @Tags transcript
// @Accept json
// @Produce json
// @Param yearId path int true "Year ID" Format(int64) minimum(1)
// @Param request body dto.SetExpandedRequest true "Expanded flag"
// @Success 200 {object} dto.APIResponse "Expansion state recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Year not found"
// @Router /years/{yearId}/expanded [put]
func (c *TranscriptController) SetYearExpanded(ctx *gin.Context) {
	yearID, ok := parseIDParam(ctx, "yearId")
	if !ok {
		return
	}

	var req dto.SetExpandedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	if err := c.transcriptService.SetYearExpanded(ctx, yearID, *req.Expanded); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}

// AddSemester appends a semester to a year
// @Summary Add a semester
// @Description Appends a semester named "Semester N" to the year
// @Tags transcript
// @Produce json
// @Param yearId path int true "Year ID" Format(int64) minimum(1)
// @Success 201 {object} dto.APIResponse{data=models.Semester} "Semester created successfully"
// @Failure 404 {object} dto.ErrorResponse "Year not found"
// @Router /years/{yearId}/semesters [post]
func (c *TranscriptController) AddSemester(ctx *gin.Context) {
	yearID, ok := parseIDParam(ctx, "yearId")
	if !ok {
		return
	}

	sem, err := c.transcriptService.AddSemester(ctx, yearID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      sem,
		Timestamp: time.Now(),
	})
}

// DeleteSemester deletes a semester
// @Summary Delete a semester
// @Description Removes a semester and its courses from the year
// @Tags transcript
// @Produce json
// @Param yearId path int true "Year ID" Format(int64) minimum(1)
// @Param semesterId path int true "Semester ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Semester deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Year or semester not found"
// @Router /years/{yearId}/semesters/{semesterId} [delete]
func (c *TranscriptController) DeleteSemester(ctx *gin.Context) {
	yearID, ok := parseIDParam(ctx, "yearId")
	if !ok {
		return
	}
	semesterID, ok := parseIDParam(ctx, "semesterId")
	if !ok {
		return
	}

	if err := c.transcriptService.DeleteSemester(ctx, yearID, semesterID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}

// AddCourse appends a course to a semester
// @Summary Add a course
// @Description Appends a course with the default grade "A" and 3 credits
// @Tags transcript
// @Produce json
// @Param yearId path int true "Year ID" Format(int64) minimum(1)
// @Param semesterId path int true "Semester ID" Format(int64) minimum(1)
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 404 {object} dto.ErrorResponse "Year or semester not found"
// @Router /years/{yearId}/semesters/{semesterId}/courses [post]
func (c *TranscriptController) AddCourse(ctx *gin.Context) {
	yearID, ok := parseIDParam(ctx, "yearId")
	if !ok {
		return
	}
	semesterID, ok := parseIDParam(ctx, "semesterId")
	if !ok {
		return
	}

	course, err := c.transcriptService.AddCourse(ctx, yearID, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// UpdateCourse applies a partial field update to a course
// @Summary Update a course
// @Description Updates the name, grade, or credits of a course. Negative credits are coerced to 0.
// @Tags transcript
// @Accept json
// @Produce json
// @Param yearId path int true "Year ID" Format(int64) minimum(1)
// @Param semesterId path int true "Semester ID" Format(int64) minimum(1)
// @Param courseId path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Year, semester, or course not found"
// @Router /years/{yearId}/semesters/{semesterId}/courses/{courseId} [put]
func (c *TranscriptController) UpdateCourse(ctx *gin.Context) {
	yearID, ok := parseIDParam(ctx, "yearId")
	if !ok {
		return
	}
	semesterID, ok := parseIDParam(ctx, "semesterId")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	update := state.CourseUpdate{
		Name:    req.Name,
		Credits: req.Credits,
	}
	if req.Grade != nil {
		grade := models.Grade(*req.Grade)
		if !grade.IsValid() {
			middleware.HandleAPIError(ctx, apperrors.ErrInvalidGrade)
			return
		}
		update.Grade = &grade
	}

	course, err := c.transcriptService.UpdateCourse(ctx, yearID, semesterID, courseID, update)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// RemoveCourse deletes a course
// @Summary Delete a course
// @Description Removes a course from its semester
// @Tags transcript
// @Produce json
// @Param yearId path int true "Year ID" Format(int64) minimum(1)
// @Param semesterId path int true "Semester ID" Format(int64) minimum(1)
// @Param courseId path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Course deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Year, semester, or course not found"
// @Router /years/{yearId}/semesters/{semesterId}/courses/{courseId} [delete]
func (c *TranscriptController) RemoveCourse(ctx *gin.Context) {
	yearID, ok := parseIDParam(ctx, "yearId")
	if !ok {
		return
	}
	semesterID, ok := parseIDParam(ctx, "semesterId")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	if err := c.transcriptService.RemoveCourse(ctx, yearID, semesterID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
