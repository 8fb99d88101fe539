package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AdminSummaryController struct {
	svc *services.AdminSummaryService
}

func NewAdminSummaryController(svc *services.AdminSummaryService) *AdminSummaryController {
	return &AdminSummaryController{svc: svc}
}

func (ctl *AdminSummaryController) UserStats(c *gin.Context) {
	stats, err := ctl.svc.GetUserStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

func (ctl *AdminSummaryController) NutritionStats(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	stats, err := ctl.svc.GetNutritionStats(days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}
