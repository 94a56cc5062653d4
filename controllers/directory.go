// controllers/directory.go
package controllers

import (
	"errors"
	"net/http"

	"locappoint-backend/config"
	"locappoint-backend/models"
	"locappoint-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Categories change rarely, so the distinct-category query is memoized with
// a single in-flight guard and invalidated on business writes.
var categoriesCache config.Memo[[]string]

// ListBusinesses returns the public directory of active businesses,
// optionally filtered by category and/or city.
func ListBusinesses(c *gin.Context) {
	query := config.DB.Where("is_active = true")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}

	var businesses []models.Business
	if err := query.Order("name").Find(&businesses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve businesses")
		return
	}

	c.JSON(http.StatusOK, businesses)
}

// GetBusiness returns one active business with its active services.
func GetBusiness(c *gin.Context) {
	businessUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid business ID format")
		return
	}

	var business models.Business
	if err := config.DB.
		Preload("Services", "is_active = true").
		Where("id = ? AND is_active = true", businessUUID).
		First(&business).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, business)
}

// GetCategories returns the distinct categories of active businesses.
func GetCategories(c *gin.Context) {
	categories, err := categoriesCache.Get(func() ([]string, error) {
		var out []string
		err := config.DB.Model(&models.Business{}).
			Where("is_active = true").
			Distinct("category").
			Order("category").
			Pluck("category", &out).Error
		return out, err
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// InvalidateCategories drops the memoized category list after a business
// profile write.
func InvalidateCategories() {
	categoriesCache.Invalidate()
}
