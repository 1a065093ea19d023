package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/mandilinkybl-pixel/madirate/model"
	"github.com/mandilinkybl-pixel/madirate/service"

	"github.com/gin-gonic/gin"
)

type StateController struct {
	stateService service.StateService
}

func NewStateController(stateSvc service.StateService) *StateController {
	return &StateController{stateService: stateSvc}
}

func (ctrl *StateController) RegisterRoutes(router *gin.RouterGroup) {
	stateGroup := router.Group("/states")
	{
		stateGroup.GET("", ctrl.listStates)
		stateGroup.POST("/add", ctrl.addStates)
		stateGroup.POST("/update", ctrl.updateState)
		stateGroup.GET("/delete/:id", ctrl.deleteState)
	}
}

func (ctrl *StateController) listStates(c *gin.Context) {
	states, err := ctrl.stateService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Response{Success: true, Count: len(states), Data: states})
}

// addStates takes comma/newline separated names and reports which were
// added and which already existed.
func (ctrl *StateController) addStates(c *gin.Context) {
	var req model.BulkNamesRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, "/states", "", "Invalid request")
		return
	}

	added, skipped, err := ctrl.stateService.BulkCreate(c.Request.Context(), req.Names)
	if err != nil {
		redirectWithFlash(c, "/states", "", flashMessage(err))
		return
	}

	redirectWithFlash(c, "/states", bulkCreateSummary(added, skipped), "")
}

func (ctrl *StateController) updateState(c *gin.Context) {
	var req model.RenameRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, "/states", "", "Invalid request")
		return
	}

	if err := ctrl.stateService.Update(c.Request.Context(), req.ID, req.Name); err != nil {
		redirectWithFlash(c, "/states", "", flashMessage(err))
		return
	}
	redirectWithFlash(c, "/states", "State updated", "")
}

func (ctrl *StateController) deleteState(c *gin.Context) {
	if err := ctrl.stateService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		redirectWithFlash(c, "/states", "", flashMessage(err))
		return
	}
	redirectWithFlash(c, "/states", "State deleted", "")
}

// bulkCreateSummary builds the "Added: ... | Skipped (duplicates): ..."
// flash line shared by the reference-data pages.
func bulkCreateSummary(added, skipped []string) string {
	parts := []string{}
	if len(added) > 0 {
		parts = append(parts, fmt.Sprintf("Added: %s", strings.Join(added, ", ")))
	}
	if len(skipped) > 0 {
		parts = append(parts, fmt.Sprintf("Skipped (duplicates): %s", strings.Join(skipped, ", ")))
	}
	if len(parts) == 0 {
		return "Nothing to add"
	}
	return strings.Join(parts, " | ")
}
