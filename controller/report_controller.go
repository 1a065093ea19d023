package controller

import (
	"fmt"
	"net/http"

	"github.com/mandilinkybl-pixel/madirate/model"
	"github.com/mandilinkybl-pixel/madirate/report"
	"github.com/mandilinkybl-pixel/madirate/service"
	"github.com/mandilinkybl-pixel/madirate/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reportService service.ReportService
	rateService   service.RateService
}

func NewReportController(reportSvc service.ReportService, rateSvc service.RateService) *ReportController {
	return &ReportController{reportService: reportSvc, rateService: rateSvc}
}

func (ctrl *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reportGroup := router.Group("/reports")
	{
		reportGroup.GET("/preview", ctrl.preview)
		reportGroup.GET("/export/pdf", ctrl.exportPDF)
		reportGroup.GET("/export/all-pdf", ctrl.exportAllPDF)
		reportGroup.GET("/history/:mandi/:commodity", ctrl.historyByMandi)
	}
}

// preview returns the exact rows the PDF export will render, so page
// counts shown on screen match the download.
func (ctrl *ReportController) preview(c *gin.Context) {
	rows, err := ctrl.reportService.DeriveRows(c.Request.Context(), service.RowFilter{
		StateID:  c.Query("state"),
		AsOfDate: c.Query("date"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Response{Success: true, Count: len(rows), Data: rows})
}

func (ctrl *ReportController) exportPDF(c *gin.Context) {
	date := c.Query("date")

	rows, err := ctrl.reportService.DeriveRows(c.Request.Context(), service.RowFilter{
		StateID:  c.Query("state"),
		AsOfDate: date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	label := "All Records"
	filename := "mandi_report_all.pdf"
	if date != "" {
		day, err := util.ParseDay(date)
		if err != nil {
			respondError(c, err)
			return
		}
		label = "Date: " + day.Format("02/01/2006")
		filename = fmt.Sprintf("mandi_report_%s.pdf", date)
	}

	ctrl.servePDF(c, rows, label, filename, report.FilteredGeometry)
}

// exportAllPDF renders the latest point of every commodity at every
// mandi in the denser all-records layout.
func (ctrl *ReportController) exportAllPDF(c *gin.Context) {
	rows, err := ctrl.reportService.DeriveRows(c.Request.Context(), service.RowFilter{})
	if err != nil {
		respondError(c, err)
		return
	}

	label := "Date: " + util.Today().Format("02/01/2006")
	ctrl.servePDF(c, rows, label, "mandi_all_report.pdf", report.AllRecordsGeometry)
}

func (ctrl *ReportController) historyByMandi(c *gin.Context) {
	history, err := ctrl.rateService.HistoryByMandi(c.Request.Context(),
		c.Param("mandi"), c.Param("commodity"), c.Query("state"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Response{Success: true, Data: history})
}

func (ctrl *ReportController) servePDF(c *gin.Context, rows []model.ReportRow, label, filename string, geo report.Geometry) {
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := report.WritePDF(c.Writer, rows, label, geo); err != nil {
		respondError(c, err)
	}
}
