package controller

import (
	"net/http"

	"github.com/mandilinkybl-pixel/madirate/model"
	"github.com/mandilinkybl-pixel/madirate/service"

	"github.com/gin-gonic/gin"
)

type MandiController struct {
	mandiService service.MandiService
}

func NewMandiController(mandiSvc service.MandiService) *MandiController {
	return &MandiController{mandiService: mandiSvc}
}

func (ctrl *MandiController) RegisterRoutes(router *gin.RouterGroup) {
	mandiGroup := router.Group("/mandi")
	{
		mandiGroup.GET("", ctrl.listMandis)
		mandiGroup.GET("/by-state/:state", ctrl.listByState)
		mandiGroup.POST("/add", ctrl.addMandis)
		mandiGroup.POST("/update", ctrl.updateMandi)
		mandiGroup.GET("/delete/:id", ctrl.deleteMandi)
	}
}

func (ctrl *MandiController) listMandis(c *gin.Context) {
	mandis, err := ctrl.mandiService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Response{Success: true, Count: len(mandis), Data: mandis})
}

func (ctrl *MandiController) listByState(c *gin.Context) {
	mandis, err := ctrl.mandiService.ListByState(c.Request.Context(), c.Param("state"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Response{Success: true, Count: len(mandis), Data: mandis})
}

func (ctrl *MandiController) addMandis(c *gin.Context) {
	var req model.CreateMandisRequest
	if wantsJSON(c) {
		if err := c.ShouldBindJSON(&req); err != nil {
			redirectWithFlash(c, "/mandi", "", "Invalid request")
			return
		}
	} else {
		req.State = c.PostForm("state")
		req.Mandis = model.StringList(c.PostFormArray("mandis"))
	}

	if err := ctrl.mandiService.BulkCreate(c.Request.Context(), req.State, req.Mandis); err != nil {
		redirectWithFlash(c, "/mandi", "", flashMessage(err))
		return
	}
	redirectWithFlash(c, "/mandi", "Mandis added", "")
}

func (ctrl *MandiController) updateMandi(c *gin.Context) {
	var req model.RenameRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, "/mandi", "", "Invalid request")
		return
	}

	if err := ctrl.mandiService.Update(c.Request.Context(), req.ID, req.Name, req.State); err != nil {
		redirectWithFlash(c, "/mandi", "", flashMessage(err))
		return
	}
	redirectWithFlash(c, "/mandi", "Mandi updated", "")
}

func (ctrl *MandiController) deleteMandi(c *gin.Context) {
	if err := ctrl.mandiService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		redirectWithFlash(c, "/mandi", "", flashMessage(err))
		return
	}
	redirectWithFlash(c, "/mandi", "Mandi deleted", "")
}
