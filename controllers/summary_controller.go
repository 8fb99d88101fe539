package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	svc *services.SummaryService
}

func NewSummaryController(svc *services.SummaryService) *SummaryController {
	return &SummaryController{svc: svc}
}

func (ctl *SummaryController) Today(c *gin.Context) {
	summary, err := ctl.svc.GetTodaySummary(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}

func (ctl *SummaryController) Weekly(c *gin.Context) {
	summaries, err := ctl.svc.GetWeeklySummary(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summaries})
}

func (ctl *SummaryController) Monthly(c *gin.Context) {
	summaries, err := ctl.svc.GetMonthlySummary(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summaries})
}

func (ctl *SummaryController) All(c *gin.Context) {
	summary, err := ctl.svc.GetAllSummary(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}

func (ctl *SummaryController) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))

	history, err := ctl.svc.GetHistory(currentUserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": history})
}
