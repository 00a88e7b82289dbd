package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ayeshchamikara/gradepoint/internal/app/models"
	"github.com/ayeshchamikara/gradepoint/internal/app/models/dto"
	"github.com/ayeshchamikara/gradepoint/internal/app/services"
	"github.com/ayeshchamikara/gradepoint/internal/middleware"
)

// ProfileController handles the singleton user profile.
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfile returns the stored profile
// @Summary Get the user profile
// @Description Retrieves the profile record, or the all-empty default when none was saved
// @Tags profile
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	profile, err := c.profileService.Get(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}

// SaveProfile replaces the stored profile
// @Summary Save the user profile
// @Description Upserts the profile record under its fixed key
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [put]
func (c *ProfileController) SaveProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	profile := models.UserProfile{
		Name:        req.Name,
		IndexNumber: req.IndexNumber,
		University:  req.University,
		Photo:       req.Photo,
	}
	if err := c.profileService.Save(ctx, profile); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}

// DeleteProfile clears the stored profile
// @Summary Delete the user profile
// @Description Clears every field and persists the empty record
// @Tags profile
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile cleared successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [delete]
func (c *ProfileController) DeleteProfile(ctx *gin.Context) {
	if err := c.profileService.Delete(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      models.UserProfile{},
		Timestamp: time.Now(),
	})
}

// UploadPhoto encodes an uploaded image for inline storage
// @Summary Upload a profile photo
// @Description Reads a local image file and returns it as an inline base64 data URI
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Image file"
// @Success 200 {object} dto.APIResponse{data=dto.PhotoResponse} "Photo encoded successfully"
// @Failure 400 {object} dto.ErrorResponse "Photo missing, unreadable, or too large"
// @Router /profile/photo [post]
func (c *ProfileController) UploadPhoto(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Photo file is required")
		errorDetail = errorDetail.WithDetails(err.Error()).WithField("photo")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	encoded, err := c.profileService.EncodePhoto(fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.PhotoResponse{Photo: encoded},
		Timestamp: time.Now(),
	})
}
