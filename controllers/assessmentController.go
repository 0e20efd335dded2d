package controllers

import (
	"encoding/base64"
	"errors"
	"html/template"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lca-bot/lcia"
	"lca-bot/report"
)

// AssessmentController serves the LCA form, runs assessments and hands out
// the generated report.
type AssessmentController struct {
	runner *report.Runner
	logger zerolog.Logger
}

// NewAssessmentController returns a controller that runs assessments with r.
func NewAssessmentController(r *report.Runner, logger zerolog.Logger) *AssessmentController {
	return &AssessmentController{runner: r, logger: logger}
}

// ShowForm renders the product form with the default product name.
func (ac *AssessmentController) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", gin.H{"Product": report.DefaultProduct})
}

// RunAssessment runs one assessment for the submitted product name and
// renders the result page.
func (ac *AssessmentController) RunAssessment(c *gin.Context) {
	product, ok := c.GetPostForm("product_name")
	if !ok {
		product = report.DefaultProduct
	}

	res, err := ac.runner.Run(c.Request.Context(), product)
	if err != nil {
		status, msg := errorResponse(err)
		c.HTML(status, "index.tmpl", gin.H{"Product": product, "Error": msg})
		return
	}

	c.HTML(http.StatusOK, "result.tmpl", gin.H{
		"Product":    product,
		"Model":      res.Model,
		"ChartURI":   template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(res.ChartPNG)),
		"ReportName": report.ReportFileName,
	})
}

// DownloadReport serves the last generated PDF under its fixed file name.
func (ac *AssessmentController) DownloadReport(c *gin.Context) {
	path := ac.runner.ReportPath()
	if _, err := os.Stat(path); err != nil {
		ac.logger.Debug().Err(err).Str("path", path).Msg("report not available")
		c.JSON(http.StatusNotFound, gin.H{"error": "No report has been generated yet"})
		return
	}
	c.FileAttachment(path, report.ReportFileName)
}

// CreateAssessment runs one assessment from a JSON request and returns the
// report model.
func (ac *AssessmentController) CreateAssessment(c *gin.Context) {
	var request struct {
		ProductName *string `json:"product_name"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := report.DefaultProduct
	if request.ProductName != nil {
		product = *request.ProductName
	}

	res, err := ac.runner.Run(c.Request.Context(), product)
	if err != nil {
		status, msg := errorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, res)
}

// Health reports that the server is up.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// errorResponse maps a run error to an HTTP status and a user-facing message.
func errorResponse(err error) (int, string) {
	var werr *report.ReportWriteError
	switch {
	case errors.Is(err, lcia.ErrEmptyInventory):
		return http.StatusUnprocessableEntity, "The inventory is empty, so there is no process to assess."
	case errors.As(err, &werr):
		return http.StatusInternalServerError, "Could not write the " + werr.Artifact + " artifact: " + werr.Err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
