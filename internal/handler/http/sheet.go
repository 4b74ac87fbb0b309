package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/primovet/vetpay-backend-go/internal/domain/sheet"
	"github.com/primovet/vetpay-backend-go/internal/handler/http/response"
)

type SheetHandler interface {
	CreateSheet(w http.ResponseWriter, r *http.Request)
	GetSheet(w http.ResponseWriter, r *http.Request)
	ListSheets(w http.ResponseWriter, r *http.Request)
	ApplyInputs(w http.ResponseWriter, r *http.Request)
	DistributeSheet(w http.ResponseWriter, r *http.Request)
	DeleteSheet(w http.ResponseWriter, r *http.Request)
}

type sheetHandlerImpl struct {
	sheetService sheet.SheetService
}

func NewSheetHandler(sheetService sheet.SheetService) SheetHandler {
	return &sheetHandlerImpl{sheetService: sheetService}
}

// ==================== SHEET HANDLERS ====================

func (h *sheetHandlerImpl) CreateSheet(w http.ResponseWriter, r *http.Request) {
	var req sheet.CreateSheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.sheetService.CreateSheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Incentive sheet created", result)
}

func (h *sheetHandlerImpl) GetSheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Sheet ID is required", nil)
		return
	}

	result, err := h.sheetService.GetSheet(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *sheetHandlerImpl) ListSheets(w http.ResponseWriter, r *http.Request) {
	var filter sheet.SheetFilter

	if branchID := r.URL.Query().Get("branch_id"); branchID != "" {
		filter.BranchID = &branchID
	}

	results, err := h.sheetService.ListSheets(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *sheetHandlerImpl) ApplyInputs(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Sheet ID is required", nil)
		return
	}

	var req sheet.ApplyInputsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.SheetID = id

	result, err := h.sheetService.ApplyInputs(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *sheetHandlerImpl) DistributeSheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Sheet ID is required", nil)
		return
	}

	result, err := h.sheetService.Distribute(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Incentive sheet distributed", result)
}

func (h *sheetHandlerImpl) DeleteSheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Sheet ID is required", nil)
		return
	}

	if err := h.sheetService.DeleteSheet(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Incentive sheet deleted successfully", nil)
}
