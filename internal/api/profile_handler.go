package api

import (
	"errors"
	"net/http"

	"alcyxob/oly-planner/internal/domain"
	"alcyxob/oly-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- DTOs ---

// ReadinessRequest is the wellness questionnaire payload. Sleep is hours;
// the other scales run 1-5.
type ReadinessRequest struct {
	Sleep     float64 `json:"sleep" binding:"required,gte=0,lte=16"`
	Quality   int     `json:"quality" binding:"required,gte=1,lte=5"`
	Stress    int     `json:"stress" binding:"required,gte=1,lte=5"`
	Soreness  int     `json:"soreness" binding:"required,gte=1,lte=5"`
	Readiness int     `json:"readiness" binding:"required,gte=1,lte=5"`
	Notes     string  `json:"notes"`
}

// --- Handler Methods ---

// CreateProfile creates a named profile, filling defaults for omitted fields.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var profile domain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	created, err := h.profileService.CreateProfile(c.Request.Context(), &profile)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNameMissing):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrProfileExists):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create profile.")
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve profile.")
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list profiles.")
		return
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	c.JSON(http.StatusOK, profiles)
}

// UpdateProfile replaces the profile's configuration and maxes. Working
// maxes are recomputed server-side.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var profile domain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	updated, err := h.profileService.UpdateProfile(c.Request.Context(), c.Param("name"), &profile)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile.")
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.profileService.DeleteProfile(c.Request.Context(), c.Param("name")); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete profile.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// LogReadiness appends a wellness check and returns the scored entry.
func (h *ProfileHandler) LogReadiness(c *gin.Context) {
	var req ReadinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.profileService.LogReadiness(c.Request.Context(), c.Param("name"), service.ReadinessCheck{
		Sleep:     req.Sleep,
		Quality:   req.Quality,
		Stress:    req.Stress,
		Soreness:  req.Soreness,
		Readiness: req.Readiness,
		Notes:     req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log readiness check.")
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}
