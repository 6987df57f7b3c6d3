package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intwaza/online-marketplace/internal/service"
)

type StoreHandler struct {
	svc *service.StoreSvc
}

func NewStoreHandler(svc *service.StoreSvc) *StoreHandler { return &StoreHandler{svc: svc} }

// POST /api/stores (seller)
func (h *StoreHandler) Create(c *gin.Context) {
	var in service.CreateStoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st, err := h.svc.Create(c.Request.Context(), Actor(c), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// GET /api/stores
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

// GET /api/stores/:id
func (h *StoreHandler) Get(c *gin.Context) {
	st, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// PUT /api/stores/:id (owner or admin)
func (h *StoreHandler) Update(c *gin.Context) {
	var in service.CreateStoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st, err := h.svc.Update(c.Request.Context(), Actor(c), c.Param("id"), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// PUT /api/stores/:id/approve (admin)
func (h *StoreHandler) Approve(c *gin.Context) {
	st, err := h.svc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// DELETE /api/stores/:id (owner or admin)
func (h *StoreHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), Actor(c), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Store deleted successfully"})
}
