package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/primovet/vetpay-backend-go/internal/domain/incentive"
	"github.com/primovet/vetpay-backend-go/internal/handler/http/response"
)

type IncentiveHandler interface {
	// Config
	ListConfigs(w http.ResponseWriter, r *http.Request)
	GetConfig(w http.ResponseWriter, r *http.Request)
	UpsertConfig(w http.ResponseWriter, r *http.Request)
	ResetConfig(w http.ResponseWriter, r *http.Request)

	// Exclusions
	ListExclusions(w http.ResponseWriter, r *http.Request)
	ReplaceExclusions(w http.ResponseWriter, r *http.Request)

	// Calculator
	ApplyIncentive(w http.ResponseWriter, r *http.Request)
	RemoveIncentive(w http.ResponseWriter, r *http.Request)
}

type incentiveHandlerImpl struct {
	incentiveService incentive.IncentiveService
}

func NewIncentiveHandler(incentiveService incentive.IncentiveService) IncentiveHandler {
	return &incentiveHandlerImpl{incentiveService: incentiveService}
}

// ==================== CONFIG HANDLERS ====================

func (h *incentiveHandlerImpl) ListConfigs(w http.ResponseWriter, r *http.Request) {
	results, err := h.incentiveService.ListConfigs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *incentiveHandlerImpl) GetConfig(w http.ResponseWriter, r *http.Request) {
	typeCode := chi.URLParam(r, "typeCode")
	if typeCode == "" {
		response.BadRequest(w, "Type code is required", nil)
		return
	}

	result, err := h.incentiveService.GetConfig(r.Context(), typeCode)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *incentiveHandlerImpl) UpsertConfig(w http.ResponseWriter, r *http.Request) {
	typeCode := chi.URLParam(r, "typeCode")
	if typeCode == "" {
		response.BadRequest(w, "Type code is required", nil)
		return
	}

	var req incentive.UpsertIncentiveConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.TypeCode = typeCode

	result, err := h.incentiveService.UpsertConfig(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Incentive config saved", result)
}

func (h *incentiveHandlerImpl) ResetConfig(w http.ResponseWriter, r *http.Request) {
	typeCode := chi.URLParam(r, "typeCode")
	if typeCode == "" {
		response.BadRequest(w, "Type code is required", nil)
		return
	}

	result, err := h.incentiveService.ResetConfig(r.Context(), typeCode)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Incentive config reset to default", result)
}

// ==================== EXCLUSION HANDLERS ====================

func (h *incentiveHandlerImpl) ListExclusions(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	results, err := h.incentiveService.ListExclusions(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *incentiveHandlerImpl) ReplaceExclusions(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req incentive.ReplaceExclusionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	results, err := h.incentiveService.ReplaceExclusions(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exclusions replaced", results)
}

// ==================== CALCULATOR HANDLERS ====================

func (h *incentiveHandlerImpl) ApplyIncentive(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")
	typeCode := chi.URLParam(r, "typeCode")
	if payrollID == "" || typeCode == "" {
		response.BadRequest(w, "Payroll ID and type code are required", nil)
		return
	}

	var req incentive.ApplyIncentiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.PayrollID = payrollID
	req.TypeCode = typeCode

	result, err := h.incentiveService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *incentiveHandlerImpl) RemoveIncentive(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")
	typeCode := chi.URLParam(r, "typeCode")
	if payrollID == "" || typeCode == "" {
		response.BadRequest(w, "Payroll ID and type code are required", nil)
		return
	}

	if err := h.incentiveService.Remove(r.Context(), payrollID, typeCode); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Incentive removed successfully", nil)
}
