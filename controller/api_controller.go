package controller

import (
	"net/http"

	"github.com/mandilinkybl-pixel/madirate/service"

	"github.com/gin-gonic/gin"
)

// ApiController serves the public read-only dashboard endpoints.
type ApiController struct {
	apiService   service.ApiService
	stateService service.StateService
	mandiService service.MandiService
}

func NewApiController(apiSvc service.ApiService, stateSvc service.StateService, mandiSvc service.MandiService) *ApiController {
	return &ApiController{
		apiService:   apiSvc,
		stateService: stateSvc,
		mandiService: mandiSvc,
	}
}

func (ctrl *ApiController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/states", ctrl.listStates)
	router.GET("/states/:stateId/mandis", ctrl.listMandis)
	router.GET("/mandi/:mandiName/prices", ctrl.mandiPrices)
	router.GET("/state/:stateId/all-prices", ctrl.statePrices)
}

func (ctrl *ApiController) listStates(c *gin.Context) {
	states, err := ctrl.stateService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	names := make([]gin.H, 0, len(states))
	for _, st := range states {
		names = append(names, gin.H{"id": st.ID.Hex(), "name": st.Name})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(names), "states": names})
}

func (ctrl *ApiController) listMandis(c *gin.Context) {
	stateID := c.Param("stateId")
	mandis, err := ctrl.mandiService.ListByState(c.Request.Context(), stateID)
	if err != nil {
		respondError(c, err)
		return
	}

	names := make([]string, 0, len(mandis))
	for _, m := range mandis {
		names = append(names, m.Name)
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stateId": stateID,
		"count":   len(names),
		"mandis":  names,
	})
}

func (ctrl *ApiController) mandiPrices(c *gin.Context) {
	prices, err := ctrl.apiService.MandiPrices(c.Request.Context(), c.Param("mandiName"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"mandi":            prices.Mandi,
		"state":            prices.State,
		"lastUpdated":      prices.LastUpdated,
		"totalCommodities": prices.TotalCommodities,
		"prices":           prices.Prices,
	})
}

func (ctrl *ApiController) statePrices(c *gin.Context) {
	prices, err := ctrl.apiService.StatePrices(c.Request.Context(), c.Param("stateId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"state":       prices.State,
		"totalMandis": prices.TotalMandis,
		"lastUpdated": prices.LastUpdated,
		"mandis":      prices.Mandis,
	})
}
