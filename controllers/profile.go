// controllers/profile.go
package controllers

import (
	"net/http"

	"locappoint-backend/config"
	"locappoint-backend/models"
	"locappoint-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateBusinessProfileInput struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	City        *string `json:"city"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// GetBusinessProfile returns the owner's business profile.
func GetBusinessProfile(c *gin.Context) {
	businessUUID, ok := businessFromContext(c)
	if !ok {
		return
	}

	var business models.Business
	if err := config.DB.First(&business, "id = ?", businessUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		return
	}

	c.JSON(http.StatusOK, business)
}

// UpdateBusinessProfile updates the owner's business profile.
func UpdateBusinessProfile(c *gin.Context) {
	businessUUID, ok := businessFromContext(c)
	if !ok {
		return
	}

	var input UpdateBusinessProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var business models.Business
	if err := config.DB.First(&business, "id = ?", businessUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		return
	}

	if input.Name != nil {
		business.Name = *input.Name
	}
	if input.Category != nil {
		business.Category = *input.Category
	}
	if input.City != nil {
		business.City = *input.City
	}
	if input.Address != nil {
		business.Address = *input.Address
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		business.Phone = *input.Phone
	}
	if input.Description != nil {
		business.Description = *input.Description
	}
	if input.IsActive != nil {
		business.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&business).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update business profile")
		return
	}

	// Category or visibility may have changed
	InvalidateCategories()

	c.JSON(http.StatusOK, business)
}
