package controller

import (
	"net/http"

	"github.com/mandilinkybl-pixel/madirate/model"
	"github.com/mandilinkybl-pixel/madirate/service"

	"github.com/gin-gonic/gin"
)

type CommodityController struct {
	commodityService service.CommodityService
}

func NewCommodityController(commoditySvc service.CommodityService) *CommodityController {
	return &CommodityController{commodityService: commoditySvc}
}

func (ctrl *CommodityController) RegisterRoutes(router *gin.RouterGroup) {
	commodityGroup := router.Group("/commodities")
	{
		commodityGroup.GET("", ctrl.listCommodities)
		commodityGroup.GET("/autocomplete", ctrl.autocomplete)
		commodityGroup.POST("/add", ctrl.addCommodities)
		commodityGroup.POST("/update", ctrl.updateCommodity)
		commodityGroup.GET("/delete/:id", ctrl.deleteCommodity)
	}
}

func (ctrl *CommodityController) listCommodities(c *gin.Context) {
	commodities, err := ctrl.commodityService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Response{Success: true, Count: len(commodities), Data: commodities})
}

// autocomplete serves the data-entry form's commodity suggestions from
// the cached master list.
func (ctrl *CommodityController) autocomplete(c *gin.Context) {
	names, err := ctrl.commodityService.Autocomplete(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

func (ctrl *CommodityController) addCommodities(c *gin.Context) {
	var req model.BulkNamesRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, "/commodities", "", "Invalid request")
		return
	}

	added, skipped, err := ctrl.commodityService.BulkCreate(c.Request.Context(), req.Names)
	if err != nil {
		redirectWithFlash(c, "/commodities", "", flashMessage(err))
		return
	}
	redirectWithFlash(c, "/commodities", bulkCreateSummary(added, skipped), "")
}

func (ctrl *CommodityController) updateCommodity(c *gin.Context) {
	var req model.RenameRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, "/commodities", "", "Invalid request")
		return
	}

	if err := ctrl.commodityService.Update(c.Request.Context(), req.ID, req.Name); err != nil {
		redirectWithFlash(c, "/commodities", "", flashMessage(err))
		return
	}
	redirectWithFlash(c, "/commodities", "Commodity updated", "")
}

func (ctrl *CommodityController) deleteCommodity(c *gin.Context) {
	if err := ctrl.commodityService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		redirectWithFlash(c, "/commodities", "", flashMessage(err))
		return
	}
	redirectWithFlash(c, "/commodities", "Commodity deleted", "")
}
