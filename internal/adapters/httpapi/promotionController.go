package httpapi

import (
	"net/http"
	"strconv"

	"github.com/anonymous231985/room-for-rent/internal/adapters/httpapi/middleware"
	promotionPort "github.com/anonymous231985/room-for-rent/internal/ports/promotion"
	"github.com/gin-gonic/gin"
)

type PromotionController struct{ ac PromotionUseCase }

func NewPromotionController(ac PromotionUseCase) *PromotionController {
	return &PromotionController{ac: ac}
}

func (ctl *PromotionController) Purchase(c *gin.Context) {
	var req struct {
		AdvertisingPackage string `json:"advertisingPackage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.ac.Purchase(c.Request.Context(), middleware.CallerID(c), req.AdvertisingPackage)
	if err != nil {
		respondError(c, err)
		return
	}
	// The record is returned PENDING; activation happens out-of-band.
	c.JSON(http.StatusCreated, res)
}

func (ctl *PromotionController) GetPayment(c *gin.Context) {
	res, err := ctl.ac.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PromotionController) CreatePackage(c *gin.Context) {
	var req promotionPort.AdPackageCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.ac.CreatePackage(c.Request.Context(), middleware.CallerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PromotionController) GetPackage(c *gin.Context) {
	res, err := ctl.ac.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PromotionController) ListPackages(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size <= 0 {
		size = 20
	}

	res, err := ctl.ac.ListPackages(c.Request.Context(), page, size, c.Query("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PromotionController) UpdatePackage(c *gin.Context) {
	var req promotionPort.AdPackageUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.ac.UpdatePackage(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
