package controller

import (
	"net/http"

	"github.com/mandilinkybl-pixel/madirate/model"
	"github.com/mandilinkybl-pixel/madirate/report"
	"github.com/mandilinkybl-pixel/madirate/service"

	"github.com/gin-gonic/gin"
)

type RateController struct {
	rateService   service.RateService
	reportService service.ReportService
	mandiService  service.MandiService
}

func NewRateController(rateSvc service.RateService, reportSvc service.ReportService, mandiSvc service.MandiService) *RateController {
	return &RateController{
		rateService:   rateSvc,
		reportService: reportSvc,
		mandiService:  mandiSvc,
	}
}

func (ctrl *RateController) RegisterRoutes(router *gin.RouterGroup) {
	rateGroup := router.Group("/mandi-rates")
	{
		rateGroup.GET("/mandis/:state", ctrl.mandisByState)
		rateGroup.GET("/search", ctrl.search)
		rateGroup.GET("/report", ctrl.report)
		rateGroup.GET("/history/:id/:commodity", ctrl.history)
		rateGroup.GET("/export/csv", ctrl.exportCSV)
		rateGroup.GET("/export/excel", ctrl.exportExcel)
	}
}

// RegisterAdminRoutes wires the mutating endpoints; the router places
// them behind the session middleware.
func (ctrl *RateController) RegisterAdminRoutes(router *gin.RouterGroup) {
	rateGroup := router.Group("/mandi-rates")
	{
		rateGroup.POST("/add", ctrl.submitPrices)
		rateGroup.POST("/add-price/:id/:commodity", ctrl.addPrice)
		rateGroup.POST("/delete-commodity/:id/:commodity", ctrl.deleteCommodity)
	}
}

// mandisByState feeds the data-entry form's mandi dropdown.
func (ctrl *RateController) mandisByState(c *gin.Context) {
	mandis, err := ctrl.mandiService.ListByState(c.Request.Context(), c.Param("state"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(mandis))
	for _, m := range mandis {
		out = append(out, gin.H{"id": m.ID.Hex(), "name": m.Name})
	}
	c.JSON(http.StatusOK, out)
}

func (ctrl *RateController) search(c *gin.Context) {
	rows, err := ctrl.reportService.SearchRows(c.Request.Context(), service.RowFilter{
		StateID:    c.Query("state"),
		MandiRegex: c.Query("mandi"),
		Search:     c.Query("search"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctrl *RateController) report(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		if parsed, err := parsePositiveInt(raw); err == nil {
			days = parsed
		}
	}

	entries, err := ctrl.reportService.ReportSince(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (ctrl *RateController) history(c *gin.Context) {
	history, err := ctrl.rateService.History(c.Request.Context(), c.Param("id"), c.Param("commodity"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Response{Success: true, Data: history})
}

// submitPrices records today's observation for every row of the bulk
// data-entry form. Form posts redirect back with a flash; API clients
// get the JSON envelope.
func (ctrl *RateController) submitPrices(c *gin.Context) {
	var req model.SubmitPricesRequest
	if wantsJSON(c) {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, model.Response{Success: false, Message: "Invalid request"})
			return
		}
	} else {
		req.State = c.PostForm("state")
		req.Mandi = c.PostForm("mandi")
		req.Types = model.StringList(c.PostFormArray("types"))
		req.CommodityIDs = model.StringList(c.PostFormArray("commodity_ids"))
		req.MinRates = model.StringList(c.PostFormArray("minrates"))
		req.MaxRates = model.StringList(c.PostFormArray("maxrates"))
		req.Arrivals = model.StringList(c.PostFormArray("arrivals"))
	}

	if err := ctrl.rateService.SubmitPrices(c.Request.Context(), req); err != nil {
		if wantsJSON(c) {
			respondError(c, err)
		} else {
			redirectWithFlash(c, "/mandi-rates", "", flashMessage(err))
		}
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, model.Response{Success: true, Message: "Rates saved"})
		return
	}
	redirectWithFlash(c, "/mandi-rates", "Rates saved", "")
}

// addPrice corrects or sets today's point for one commodity and returns
// the new trend for the page to render in place.
func (ctrl *RateController) addPrice(c *gin.Context) {
	var req model.AddPriceRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{Success: false, Message: "Invalid request"})
		return
	}

	trend, err := ctrl.rateService.AddPrice(c.Request.Context(), c.Param("id"), c.Param("commodity"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trend": trend})
}

func (ctrl *RateController) deleteCommodity(c *gin.Context) {
	if err := ctrl.rateService.DeleteCommodity(c.Request.Context(), c.Param("id"), c.Param("commodity")); err != nil {
		if wantsJSON(c) {
			respondError(c, err)
		} else {
			redirectWithFlash(c, "/mandi-rates", "", flashMessage(err))
		}
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, model.Response{Success: true, Message: "Commodity deleted"})
		return
	}
	redirectWithFlash(c, "/mandi-rates", "Commodity deleted", "")
}

func (ctrl *RateController) exportCSV(c *gin.Context) {
	rows, err := ctrl.exportRows(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="mandirates.csv"`)
	if err := report.WriteCSV(c.Writer, rows); err != nil {
		respondError(c, err)
	}
}

func (ctrl *RateController) exportExcel(c *gin.Context) {
	rows, err := ctrl.exportRows(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="mandirates.xlsx"`)
	if err := report.WriteExcel(c.Writer, rows); err != nil {
		respondError(c, err)
	}
}

// exportRows derives the same filtered rows for both flat exporters.
func (ctrl *RateController) exportRows(c *gin.Context) ([]model.ReportRow, error) {
	return ctrl.reportService.DeriveRows(c.Request.Context(), service.RowFilter{
		StateID:    c.Query("state"),
		MandiRegex: c.Query("mandi"),
		AsOfDate:   c.Query("date"),
		Search:     c.Query("search"),
	})
}
