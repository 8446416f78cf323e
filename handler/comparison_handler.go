package handler

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Aashish23092/gas-bill-compare/dto"
	"github.com/Aashish23092/gas-bill-compare/metrics"
	"github.com/Aashish23092/gas-bill-compare/middleware"
	"github.com/Aashish23092/gas-bill-compare/service"
	"github.com/Aashish23092/gas-bill-compare/utils/xlsxsheet"
	"github.com/Aashish23092/gas-bill-compare/web"

	"github.com/gin-gonic/gin"
)

const (
	missingBillsMessage = "Both files are required: old_bill and new_bill"
	downloadFilename    = "gas_bill_comparison.xlsx"
)

type ComparisonHandler struct {
	compareService *service.CompareService
	maxFileSize    int64
}

func NewComparisonHandler(compareService *service.CompareService, maxFileSize int64) *ComparisonHandler {
	return &ComparisonHandler{
		compareService: compareService,
		maxFileSize:    maxFileSize,
	}
}

// Home serves the upload page.
func (h *ComparisonHandler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}

// Health handles GET /api/health
func (h *ComparisonHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Preview handles the POST /api/preview endpoint
func (h *ComparisonHandler) Preview(c *gin.Context) {
	start := time.Now()

	oldPDF, newPDF, req, ok := h.readBills(c)
	if !ok {
		return
	}

	table, err := h.compareService.BuildComparisonTable(oldPDF, newPDF, req.OldLabel, req.NewLabel)
	if err != nil {
		metrics.ObserveComparison(metrics.FormatTable, metrics.ResultError, time.Since(start))
		h.sendError(c, fmt.Sprintf("Failed to process PDFs: %v", err), err)
		return
	}

	metrics.ObserveComparison(metrics.FormatTable, metrics.ResultSuccess, time.Since(start))
	c.JSON(http.StatusOK, table)
}

// Compare handles the POST /api/compare endpoint and returns the workbook.
func (h *ComparisonHandler) Compare(c *gin.Context) {
	start := time.Now()

	oldPDF, newPDF, req, ok := h.readBills(c)
	if !ok {
		return
	}

	data, err := h.compareService.BuildComparisonXLSX(oldPDF, newPDF, req.OldLabel, req.NewLabel)
	if err != nil {
		metrics.ObserveComparison(metrics.FormatXLSX, metrics.ResultError, time.Since(start))
		h.sendError(c, fmt.Sprintf("Failed to process PDFs: %v", err), err)
		return
	}

	metrics.ObserveComparison(metrics.FormatXLSX, metrics.ResultSuccess, time.Since(start))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, downloadFilename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, xlsxsheet.ContentType, data)
}

// readBills pulls both uploads and the optional labels out of the form.
// On failure the error response has already been written.
func (h *ComparisonHandler) readBills(c *gin.Context) (oldPDF, newPDF []byte, req *dto.ComparisonRequest, ok bool) {
	req = &dto.ComparisonRequest{
		OldLabel: c.PostForm("old_label"),
		NewLabel: c.PostForm("new_label"),
	}
	req.OldBill, _ = c.FormFile("old_bill")
	req.NewBill, _ = c.FormFile("new_bill")

	if err := req.Validate(); err != nil {
		h.sendError(c, missingBillsMessage, nil)
		return nil, nil, nil, false
	}

	oldPDF, err := h.readUpload(req.OldBill)
	if err != nil {
		h.sendError(c, fmt.Sprintf("Failed to read old_bill: %v", err), err)
		return nil, nil, nil, false
	}
	newPDF, err = h.readUpload(req.NewBill)
	if err != nil {
		h.sendError(c, fmt.Sprintf("Failed to read new_bill: %v", err), err)
		return nil, nil, nil, false
	}

	return oldPDF, newPDF, req, true
}

func (h *ComparisonHandler) readUpload(file *multipart.FileHeader) ([]byte, error) {
	if h.maxFileSize > 0 && file.Size > h.maxFileSize {
		return nil, fmt.Errorf("%s exceeds the %d MB upload limit", file.Filename, h.maxFileSize>>20)
	}

	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// sendError writes a 400 with an {"error": message} body
func (h *ComparisonHandler) sendError(c *gin.Context, message string, err error) {
	if err != nil {
		log.Printf("[%s] Error: %s", c.GetString(middleware.RequestIDKey), message)
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
}
