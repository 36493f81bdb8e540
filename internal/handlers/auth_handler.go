package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"peluqueria/internal/auth"
	"peluqueria/internal/config"
	"peluqueria/internal/models"
)

type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

type registerRequest struct {
	FirstName      string  `json:"firstName" binding:"required"`
	LastName       string  `json:"lastName" binding:"required"`
	SecondLastName *string `json:"secondLastName"`
	NationalID     string  `json:"nationalId" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Address        string  `json:"address"`
	Password       string  `json:"password" binding:"required,min=6"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var count int64
	err := h.db.Model(&models.User{}).
		Where("email = ? OR national_id = ?", req.Email, req.NationalID).
		Count(&count).Error
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "email or national id already registered"})
		return
	}

	var role models.Role
	if err := h.db.Where("name = ?", models.RoleClient).First(&role).Error; err != nil {
		respondStoreError(c, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	user := models.User{
		RoleID:         role.ID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		SecondLastName: req.SecondLastName,
		NationalID:     req.NationalID,
		Email:          req.Email,
		Address:        req.Address,
		Password:       hash,
	}
	if err := h.db.Create(&user).Error; err != nil {
		respondStoreError(c, err)
		return
	}
	user.Role = role
	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := h.db.Preload("Role").Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		respondStoreError(c, err)
		return
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(h.cfg.Auth.Secret, h.cfg.Auth.TokenTTL, user.ID, user.Role.Name)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
