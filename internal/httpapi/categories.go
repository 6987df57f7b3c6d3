package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intwaza/online-marketplace/internal/service"
)

type CategoryHandler struct {
	svc *service.CategorySvc
}

func NewCategoryHandler(svc *service.CategorySvc) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// POST /api/categories (admin)
func (h *CategoryHandler) Create(c *gin.Context) {
	var in service.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// GET /api/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	cat, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// PUT /api/categories/:id (admin)
func (h *CategoryHandler) Update(c *gin.Context) {
	var in service.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// DELETE /api/categories/:id (admin)
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
