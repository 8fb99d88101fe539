package controllers

import (
	"io"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

const maxPredictionImageBytes = 10 << 20

type PredictionController struct {
	svc *services.PredictionService
}

func NewPredictionController(svc *services.PredictionService) *PredictionController {
	return &PredictionController{svc: svc}
}

func (ctl *PredictionController) Predict(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxPredictionImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read image file"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read image file"})
		return
	}

	result, err := ctl.svc.Predict(image, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": result})
}
