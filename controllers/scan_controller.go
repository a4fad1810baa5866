package controllers

import (
	"net/http"

	"github.com/calo-work-stack/Calo-sub003/services"
	"github.com/calo-work-stack/Calo-sub003/utils"

	"github.com/gin-gonic/gin"
)

type ScanController struct {
	Foods *services.FoodService
}

func NewScanController(foods *services.FoodService) *ScanController {
	return &ScanController{Foods: foods}
}

type ScanRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /scan/photo — upload the photo, run label detection, return catalog
// candidates plus the stored photo URL for attaching to a meal.
func (sc *ScanController) ScanPhoto(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "meal-photos")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	candidates, err := sc.Foods.Recognize(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"photo_url":  url,
		"candidates": candidates,
	})
}

// GET /foods/search?q=
func (sc *ScanController) SearchFoods(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'q' query param"})
		return
	}

	foods, err := sc.Foods.Search(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}
