package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ayeshchamikara/gradepoint/internal/app/models/dto"
	"github.com/ayeshchamikara/gradepoint/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the standard error envelope.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrYearNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Year not found"),
		})
		return
	case errors.Is(err, apperrors.ErrSemesterNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Semester not found"),
		})
		return
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found"),
		})
		return
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
		return
	case errors.Is(err, apperrors.ErrInvalidGrade):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Grade is not part of the grading scale").WithField("grade"),
		})
		return
	case errors.Is(err, apperrors.ErrPhotoTooLarge):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodePhotoTooLarge, "Photo exceeds the maximum allowed size").WithField("photo"),
		})
		return
	case errors.Is(err, apperrors.ErrPhotoUnreadable):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Photo upload could not be read").WithField("photo"),
		})
		return
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"),
		})
		return
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
		return
	}
}
