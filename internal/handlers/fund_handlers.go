package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/epeers/fundsite/internal/middleware"
	"github.com/epeers/fundsite/internal/models"
	"github.com/epeers/fundsite/internal/repository"
	"github.com/epeers/fundsite/internal/services"
	"github.com/epeers/fundsite/web"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// FundHandler serves the fund views and the JSON API
type FundHandler struct {
	fundSvc        *services.FundService
	consistencySvc *services.ConsistencyService
}

// NewFundHandler creates a new FundHandler
func NewFundHandler(fundSvc *services.FundService, consistencySvc *services.ConsistencyService) *FundHandler {
	return &FundHandler{
		fundSvc:        fundSvc,
		consistencySvc: consistencySvc,
	}
}

type indexPage struct {
	Title string
	Funds []models.Fund
}

type detailsPage struct {
	Title    string
	Fund     models.Fund
	Warnings []models.Warning
}

type messagePage struct {
	Title     string
	Message   string
	RequestID string
}

// Index handles GET /funds
func (h *FundHandler) Index(c *gin.Context) {
	funds, err := h.fundSvc.ListCatalog(c.Request.Context())
	if err != nil {
		logDataError(c, "list funds", err)
		h.renderErrorPage(c, http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, web.IndexTemplate, indexPage{
		Title: "Funds",
		Funds: funds,
	})
}

// Details handles GET /funds/:id.
// An id that is not a whole number cannot name a fund and gets the not-found page.
func (h *FundHandler) Details(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.NotFound(c)
		return
	}

	warnCtx, wc := services.NewWarningContext(c.Request.Context())
	fund, found, err := h.fundSvc.Lookup(warnCtx, id)
	if err != nil {
		logDataError(c, "lookup fund", err)
		h.renderErrorPage(c, http.StatusInternalServerError)
		return
	}
	if !found {
		h.NotFound(c)
		return
	}

	c.HTML(http.StatusOK, web.DetailsTemplate, detailsPage{
		Title:    fund.Name,
		Fund:     fund,
		Warnings: wc.GetWarnings(),
	})
}

// NotFound renders the HTML not-found page
func (h *FundHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, web.NotFoundTemplate, messagePage{
		Title:   "Not found",
		Message: "The fund you are looking for does not exist.",
	})
}

// Error handles GET /error
func (h *FundHandler) Error(c *gin.Context) {
	h.renderErrorPage(c, http.StatusOK)
}

func (h *FundHandler) renderErrorPage(c *gin.Context, status int) {
	rid, _ := middleware.GetRequestID(c)
	c.HTML(status, web.ErrorTemplate, messagePage{
		Title:     "Error",
		RequestID: rid,
	})
}

// ListFunds handles GET /api/funds
// @Summary List funds
// @Description Get every fund of the listing catalog in catalog order
// @Tags funds
// @Produce json
// @Success 200 {array} models.Fund
// @Failure 500 {object} models.ErrorResponse
// @Router /api/funds [get]
func (h *FundHandler) ListFunds(c *gin.Context) {
	funds, err := h.fundSvc.ListCatalog(c.Request.Context())
	if err != nil {
		logDataError(c, "list funds", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, funds)
}

// GetFund handles GET /api/funds/:id
// @Summary Get a fund
// @Description Look up a single fund by id in the detail catalog
// @Tags funds
// @Produce json
// @Param id path int true "Fund ID"
// @Success 200 {object} models.FundResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/funds/{id} [get]
func (h *FundHandler) GetFund(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid fund ID",
		})
		return
	}

	warnCtx, wc := services.NewWarningContext(c.Request.Context())
	fund, found, err := h.fundSvc.Lookup(warnCtx, id)
	if err != nil {
		logDataError(c, "lookup fund", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "fund not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.FundResponse{
		Fund:     fund,
		Warnings: wc.GetWarnings(),
	})
}

// ExportCSV handles GET /api/export/funds.csv
// @Summary Export funds as CSV
// @Description Download the listing catalog as a CSV file
// @Tags funds
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/export/funds.csv [get]
func (h *FundHandler) ExportCSV(c *gin.Context) {
	funds, err := h.fundSvc.ListCatalog(c.Request.Context())
	if err != nil {
		logDataError(c, "export funds", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	var buf bytes.Buffer
	if err := WriteFundsCSV(&buf, funds); err != nil {
		log.Errorf("export funds: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=funds.csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Consistency handles GET /api/consistency
// @Summary Compare fund catalogs
// @Description Report differences between the listing catalog and the detail catalog
// @Tags funds
// @Produce json
// @Success 200 {object} models.ConsistencyReport
// @Failure 500 {object} models.ErrorResponse
// @Router /api/consistency [get]
func (h *FundHandler) Consistency(c *gin.Context) {
	warnCtx, wc := services.NewWarningContext(c.Request.Context())
	report, err := h.consistencySvc.Compare(warnCtx)
	if err != nil {
		logDataError(c, "compare catalogs", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	report.Warnings = wc.GetWarnings()
	c.JSON(http.StatusOK, report)
}

// logDataError logs a catalog failure tagged with its kind
func logDataError(c *gin.Context, op string, err error) {
	kind := "unknown"
	switch {
	case errors.Is(err, repository.ErrDataSourceUnavailable):
		kind = "data_source_unavailable"
	case errors.Is(err, repository.ErrMalformedData):
		kind = "malformed_data"
	}

	rid, _ := middleware.GetRequestID(c)
	log.WithFields(log.Fields{
		"request_id": rid,
		"kind":       kind,
	}).Errorf("%s: %v", op, err)
}
