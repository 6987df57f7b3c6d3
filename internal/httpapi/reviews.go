package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intwaza/online-marketplace/internal/service"
)

type ReviewHandler struct {
	svc *service.ReviewSvc
}

func NewReviewHandler(svc *service.ReviewSvc) *ReviewHandler { return &ReviewHandler{svc: svc} }

// POST /api/reviews (shopper)
func (h *ReviewHandler) Create(c *gin.Context) {
	var in service.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rv, err := h.svc.Create(c.Request.Context(), Actor(c), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, rv)
}

// GET /api/reviews/:id
func (h *ReviewHandler) Get(c *gin.Context) {
	rv, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, rv)
}

// GET /api/reviews/product/:productId
func (h *ReviewHandler) ByProduct(c *gin.Context) {
	reviews, err := h.svc.ByProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GET /api/reviews/product/:productId/stats
func (h *ReviewHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// PUT /api/reviews/:id (author)
func (h *ReviewHandler) Update(c *gin.Context) {
	var in service.ReviewUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rv, err := h.svc.Update(c.Request.Context(), Actor(c), c.Param("id"), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, rv)
}

// DELETE /api/reviews/:id (author or admin)
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), Actor(c), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
