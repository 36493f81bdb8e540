package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"peluqueria/internal/models"
)

type CompanyHandler struct {
	db *gorm.DB
}

func NewCompanyHandler(db *gorm.DB) *CompanyHandler {
	return &CompanyHandler{db: db}
}

func (h *CompanyHandler) Get(c *gin.Context) {
	var company models.Company
	if err := h.db.First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company profile not configured"})
			return
		}
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

type companyRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address string  `json:"address"`
	Phone   string  `json:"phone"`
	Email   string  `json:"email"`
	Logo    *string `json:"logo"`
}

// Update upserts the single company profile row.
func (h *CompanyHandler) Update(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var company models.Company
	err := h.db.First(&company).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		respondStoreError(c, err)
		return
	}

	company.Name = req.Name
	company.Address = req.Address
	company.Phone = req.Phone
	company.Email = req.Email
	if req.Logo != nil {
		company.Logo = req.Logo
	}

	if err := h.db.Save(&company).Error; err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}
