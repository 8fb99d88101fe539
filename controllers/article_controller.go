package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ArticleController struct {
	svc *services.ArticleService
}

func NewArticleController(svc *services.ArticleService) *ArticleController {
	return &ArticleController{svc: svc}
}

func (ctl *ArticleController) ListCategories(c *gin.Context) {
	page, limit := pageParams(c)
	categories, meta, err := ctl.svc.ListCategories(c.Query("q"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories, "meta": meta})
}

func (ctl *ArticleController) CreateCategory(c *gin.Context) {
	var input nameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := ctl.svc.CreateCategory(input.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": category})
}

func (ctl *ArticleController) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.svc.DeleteCategory(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

func (ctl *ArticleController) ListArticles(c *gin.Context) {
	var query services.CatalogListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	articles, meta, err := ctl.svc.ListArticles(query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": articles, "meta": meta})
}

func (ctl *ArticleController) GetArticle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	article, err := ctl.svc.GetArticleByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": article})
}

func (ctl *ArticleController) CreateArticle(c *gin.Context) {
	var input services.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := ctl.svc.CreateArticle(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": article})
}

func (ctl *ArticleController) UpdateArticle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch services.ArticlePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := ctl.svc.UpdateArticle(id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": article})
}

func (ctl *ArticleController) DeleteArticle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.svc.DeleteArticle(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}
