package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	svc *services.LogService
}

func NewLogController(svc *services.LogService) *LogController {
	return &LogController{svc: svc}
}

func (ctl *LogController) LogFoods(c *gin.Context) {
	var input struct {
		Foods []services.FoodLogRequest `json:"foods" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ctl.svc.LogFoods(currentUserID(c), input.Foods)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": result})
}

func (ctl *LogController) LogActivities(c *gin.Context) {
	var input struct {
		Activities []services.ActivityLogRequest `json:"activities" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ctl.svc.LogActivities(currentUserID(c), input.Activities)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": result})
}

func (ctl *LogController) LogSteps(c *gin.Context) {
	var input struct {
		Steps int `json:"steps" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := ctl.svc.LogSteps(currentUserID(c), input.Steps)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": log})
}

func (ctl *LogController) LogWater(c *gin.Context) {
	var input struct {
		Amount int `json:"amount" binding:"required,min=1"` // ml
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := ctl.svc.LogWater(currentUserID(c), input.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": log})
}
