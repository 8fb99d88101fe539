package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	svc *services.ProfileService
}

func NewProfileController(svc *services.ProfileService) *ProfileController {
	return &ProfileController{svc: svc}
}

// SetupProfile runs the full questionnaire and replaces every derived
// budget at once.
func (ctl *ProfileController) SetupProfile(c *gin.Context) {
	var input services.ProfileSetupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	derived, err := ctl.svc.SetupProfile(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": derived})
}

func (ctl *ProfileController) GetProfileSetup(c *gin.Context) {
	profile, err := ctl.svc.GetProfileSetup(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}
