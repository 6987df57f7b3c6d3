package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intwaza/online-marketplace/internal/service"
)

type AuthHandler struct {
	svc *service.AuthSvc
}

func NewAuthHandler(svc *service.AuthSvc) *AuthHandler { return &AuthHandler{svc: svc} }

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.Register(c.Request.Context(), in.Email, in.Password, in.Name)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully. Please check your email for verification.",
		"userId":  u.ID,
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/auth/verify-email/:token
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	if err := h.svc.VerifyEmail(c.Request.Context(), c.Param("token")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

// POST /api/auth/apply-seller
func (h *AuthHandler) ApplySeller(c *gin.Context) {
	var in struct {
		Email            string `json:"email" binding:"required,email"`
		StoreName        string `json:"storeName" binding:"required"`
		StoreDescription string `json:"storeDescription"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind, err := h.svc.ApplyAsSeller(c.Request.Context(), in.Email, in.StoreName, in.StoreDescription)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Seller application submitted successfully. You will receive an email once approved.",
		"type":    kind,
	})
}

// POST /api/auth/approve-seller/:email (admin)
func (h *AuthHandler) ApproveSeller(c *gin.Context) {
	u, kind, err := h.svc.ApproveSeller(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Seller approved successfully",
		"userId":  u.ID,
		"type":    kind,
	})
}
