package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// ContentController serves the flat content catalogs: tips, FAQs,
// carousels and informations.
type ContentController struct {
	svc *services.ContentService
}

func NewContentController(svc *services.ContentService) *ContentController {
	return &ContentController{svc: svc}
}

// ---------- tips ----------

func (ctl *ContentController) ListTips(c *gin.Context) {
	page, limit := pageParams(c)
	tips, meta, err := ctl.svc.ListTips(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tips, "meta": meta})
}

func (ctl *ContentController) CreateTip(c *gin.Context) {
	var input services.TipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tip, err := ctl.svc.CreateTip(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": tip})
}

func (ctl *ContentController) UpdateTip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.TipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tip, err := ctl.svc.UpdateTip(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tip})
}

func (ctl *ContentController) DeleteTip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.svc.DeleteTip(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tip deleted"})
}

// ---------- FAQs ----------

func (ctl *ContentController) ListFaqs(c *gin.Context) {
	page, limit := pageParams(c)
	faqs, meta, err := ctl.svc.ListFaqs(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": faqs, "meta": meta})
}

func (ctl *ContentController) CreateFaq(c *gin.Context) {
	var input services.FaqInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faq, err := ctl.svc.CreateFaq(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": faq})
}

func (ctl *ContentController) UpdateFaq(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.FaqInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faq, err := ctl.svc.UpdateFaq(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": faq})
}

func (ctl *ContentController) DeleteFaq(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.svc.DeleteFaq(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "faq deleted"})
}

// ---------- carousels ----------

func (ctl *ContentController) ListCarousels(c *gin.Context) {
	page, limit := pageParams(c)
	carousels, meta, err := ctl.svc.ListCarousels(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": carousels, "meta": meta})
}

func (ctl *ContentController) CreateCarousel(c *gin.Context) {
	var input services.CarouselInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	carousel, err := ctl.svc.CreateCarousel(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": carousel})
}

func (ctl *ContentController) DeleteCarousel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.svc.DeleteCarousel(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "carousel deleted"})
}

// ---------- informations ----------

func (ctl *ContentController) ListInformations(c *gin.Context) {
	page, limit := pageParams(c)
	informations, meta, err := ctl.svc.ListInformations(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": informations, "meta": meta})
}

func (ctl *ContentController) CreateInformation(c *gin.Context) {
	var input services.InformationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := ctl.svc.CreateInformation(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": info})
}

func (ctl *ContentController) UpdateInformation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.InformationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := ctl.svc.UpdateInformation(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": info})
}

func (ctl *ContentController) DeleteInformation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.svc.DeleteInformation(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "information deleted"})
}
