package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/harentsoaR/clinic-admin-api/internal/auth"
	"github.com/harentsoaR/clinic-admin-api/internal/middleware"
	"github.com/harentsoaR/clinic-admin-api/internal/models"
	"github.com/harentsoaR/clinic-admin-api/internal/store"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an admin by email and password and issues the bearer
// token every guarded route expects. A missing account and a wrong password
// are indistinguishable to the caller.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	admin, err := h.Admins.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.serverError(c, "admin lookup by email failed", err)
		return
	}

	if !auth.CheckPasswordHash(req.Password, admin.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.Tokens.Generate(admin.ID.Hex(), models.RoleAdmin)
	if err != nil {
		h.Logger.Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "admin": admin})
}

// GetProfile returns the authenticated admin's own record, password stripped.
func (h *Handler) GetProfile(c *gin.Context) {
	adminID, ok := h.callerAdminID(c)
	if !ok {
		return
	}

	admin, err := h.Admins.FindByID(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}
		h.serverError(c, "admin lookup failed", err)
		return
	}

	c.JSON(http.StatusOK, admin)
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// UpdateProfile overwrites the authenticated admin's name and email. The
// admin is always the token's subject; no id is accepted from the body.
// Concurrent updates are last-writer-wins.
func (h *Handler) UpdateProfile(c *gin.Context) {
	adminID, ok := h.callerAdminID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	admin, err := h.Admins.UpdateProfile(c.Request.Context(), adminID, req.FirstName, req.LastName, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}
		h.serverError(c, "profile update failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "admin": admin})
}

// callerAdminID resolves the subject id the auth middleware decoded. A
// non-ObjectID subject can only come from a token minted outside this API.
func (h *Handler) callerAdminID(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.GetString(middleware.ContextUserID)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		h.Logger.Error("malformed subject id in token", zap.String("userId", raw), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return primitive.NilObjectID, false
	}
	return id, true
}
