// Scan HTTP handlers.
//
// This file exposes REST endpoints for the scan dispatch core:
//   - POST /scan                      (dispatch one decoded payload)
//   - POST /scan/restricted           (app-only dispatch)
//   - GET  /scan/history              (bounded general history)
//   - GET  /scan/restricted/history   (bounded restricted audit)
//   - POST /scan/restart              (force Suppressed → Idle)
//   - POST /scan/restricted/restart
//
// Handlers are transport-thin: they validate input, call the scan service,
// and return the dispatch outcome verbatim. The client performs whatever
// action the outcome directs (open URL, dial, navigate); the server never
// touches device capabilities.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khateebdev-stack/qrcode/internal/scan"
	"github.com/khateebdev-stack/qrcode/internal/utils"
)

//
// Service contracts (context-aware)
//

// ScanService defines the dispatch operations consumed by HTTP handlers.
//
// Implementations must be safe for concurrent use; decode callbacks may
// fire at high frequency and the suppression policy inside the dispatchers
// is the backstop, not the primary serialization mechanism.
type ScanService interface {
	// Decode dispatches a decoded payload in general mode.
	Decode(ctx context.Context, payload string) scan.Outcome
	// DecodeRestricted dispatches a decoded payload in app-only mode.
	DecodeRestricted(ctx context.Context, payload string) scan.Outcome
	// History returns the general history snapshot, newest-first.
	History() []scan.Entry
	// RestrictedHistory returns the restricted audit snapshot, newest-first.
	RestrictedHistory() []scan.Entry
	// Restart forces the general dispatcher to Idle.
	Restart()
	// RestartRestricted forces the restricted dispatcher to Idle.
	RestartRestricted()
}

//
// DTOs
//

// DecodeRequest is the JSON payload for a decode event. Payload is a
// pointer so that a present-but-empty string (a valid scan, classified as
// Text) is distinguishable from a missing field.
type DecodeRequest struct {
	Payload *string `json:"payload" binding:"required" example:"qrcodeapp://user/42"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// HistoryResponse wraps a page of history entries and pagination
// information. The underlying ring holds at most 50 entries; pagination is
// a view convenience, not extra retention.
type HistoryResponse struct {
	Entries    []scan.Entry `json:"entries"`
	Pagination Pagination   `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// pageOf slices a newest-first snapshot into a paginated response.
func pageOf(entries []scan.Entry, page, pageSize int) HistoryResponse {
	total := int64(len(entries))
	start := (page - 1) * pageSize
	if start > len(entries) {
		start = len(entries)
	}
	end := start + pageSize
	if end > len(entries) {
		end = len(entries)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return HistoryResponse{
		Entries: entries[start:end],
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	}
}

//
// Handlers
//

// Decode godoc
// @ID          decodeScan
// @Summary     Dispatch a decoded QR payload
// @Description Classifies the payload and returns the dispatch outcome (executed, navigated, presented, presented_error, or ignored while suppressed).
// @Tags        Scan
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.DecodeRequest  true  "Decode event"
//
// @Success     200  {object}  scan.Outcome
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /scan [post]
func (h *Handlers) Decode(c *gin.Context) {
	var req DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "payload field required")
		return
	}
	out := h.scanSvc.Decode(c.Request.Context(), *req.Payload)
	ok(c, http.StatusOK, out)
}

// DecodeRestricted godoc
// @ID          decodeScanRestricted
// @Summary     Dispatch a decoded payload in app-only mode
// @Description Accepts only qrcodeapp:// deep links; everything else is rejected with a fixed reason and audited with valid=false.
// @Tags        Scan
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.DecodeRequest  true  "Decode event"
//
// @Success     200  {object}  scan.Outcome
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /scan/restricted [post]
func (h *Handlers) DecodeRestricted(c *gin.Context) {
	var req DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "payload field required")
		return
	}
	out := h.scanSvc.DecodeRestricted(c.Request.Context(), *req.Payload)
	ok(c, http.StatusOK, out)
}

// ScanHistory godoc
// @ID          scanHistory
// @Summary     List the general scan history
// @Description Returns the bounded (50 entries) in-memory scan history, newest-first.
// @Tags        Scan
// @Produce     json
//
// @Param       page       query  int  false  "Page number"    minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page" minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.HistoryResponse
// @Router      /scan/history [get]
func (h *Handlers) ScanHistory(c *gin.Context) {
	page, pageSize := clampPagination(c)
	ok(c, http.StatusOK, pageOf(h.scanSvc.History(), page, pageSize))
}

// RestrictedHistory godoc
// @ID          restrictedScanHistory
// @Summary     List the restricted scan audit
// @Description Returns the bounded restricted-mode audit with per-entry validity flags, newest-first.
// @Tags        Scan
// @Produce     json
//
// @Param       page       query  int  false  "Page number"    minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page" minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.HistoryResponse
// @Router      /scan/restricted/history [get]
func (h *Handlers) RestrictedHistory(c *gin.Context) {
	page, pageSize := clampPagination(c)
	ok(c, http.StatusOK, pageOf(h.scanSvc.RestrictedHistory(), page, pageSize))
}

// RestartScanner godoc
// @ID          restartScanner
// @Summary     Reset the general dispatcher
// @Description Forces an immediate Suppressed→Idle transition and signals the capture session to re-acquire. Idempotent.
// @Tags        Scan
//
// @Success     204  {string}  string  "No Content"
// @Router      /scan/restart [post]
func (h *Handlers) RestartScanner(c *gin.Context) {
	h.scanSvc.Restart()
	noContent(c)
}

// RestartRestrictedScanner godoc
// @ID          restartRestrictedScanner
// @Summary     Reset the restricted dispatcher
// @Description Forces an immediate Suppressed→Idle transition for the app-only dispatcher. Idempotent.
// @Tags        Scan
//
// @Success     204  {string}  string  "No Content"
// @Router      /scan/restricted/restart [post]
func (h *Handlers) RestartRestrictedScanner(c *gin.Context) {
	h.scanSvc.RestartRestricted()
	noContent(c)
}
