package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harentsoaR/clinic-admin-api/internal/auth"
	"github.com/harentsoaR/clinic-admin-api/internal/models"
	"github.com/harentsoaR/clinic-admin-api/internal/store"
)

type AddDoctorRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Specialty     string `json:"specialty" binding:"required"`
	LicenseNumber string `json:"licenseNumber" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Password      string `json:"password" binding:"required,min=8"`
}

// AddDoctor creates a doctor account. Admin only; doctors never self-register.
func (h *Handler) AddDoctor(c *gin.Context) {
	var req AddDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Logger.Error("password hash failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	doctor := models.Doctor{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Specialty:     req.Specialty,
		LicenseNumber: req.LicenseNumber,
		Phone:         req.Phone,
		Password:      hashedPassword,
	}

	if err := h.Doctors.Insert(c.Request.Context(), &doctor); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A doctor with this email or license number already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.NotificationSvc.SendDoctorWelcomeSMS(&doctor)

	c.JSON(http.StatusCreated, gin.H{"message": "Doctor added successfully"})
}

type AddAdminRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

// AddAdmin creates another admin account. Admin only.
func (h *Handler) AddAdmin(c *gin.Context) {
	var req AddAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Logger.Error("password hash failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	admin := models.Admin{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashedPassword,
	}

	if err := h.Admins.Insert(c.Request.Context(), &admin); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "An admin with this email already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin added successfully"})
}
