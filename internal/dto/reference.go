package dto

import "github.com/fintrackhq/finance_tracker_app/internal/core/domain"

// ReferenceItemResponse is the shared outward shape of a lookup row.
type ReferenceItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaymentCenterResponse carries the extra description field.
type PaymentCenterResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func ToPaymentCenterResponses(centers []domain.PaymentCenter) []PaymentCenterResponse {
	out := make([]PaymentCenterResponse, len(centers))
	for i, c := range centers {
		out[i] = PaymentCenterResponse{ID: c.PaymentCenterID, Name: c.Name, Description: c.Description}
	}
	return out
}

func ToPaymentTypeResponses(types []domain.PaymentType) []ReferenceItemResponse {
	out := make([]ReferenceItemResponse, len(types))
	for i, t := range types {
		out[i] = ReferenceItemResponse{ID: t.PaymentTypeID, Name: t.Name}
	}
	return out
}

func ToExpenseStatusResponses(statuses []domain.ExpenseStatus) []ReferenceItemResponse {
	out := make([]ReferenceItemResponse, len(statuses))
	for i, s := range statuses {
		out[i] = ReferenceItemResponse{ID: s.ExpenseStatusID, Name: s.Name}
	}
	return out
}

func ToProgramResponses(programs []domain.Program) []ReferenceItemResponse {
	out := make([]ReferenceItemResponse, len(programs))
	for i, p := range programs {
		out[i] = ReferenceItemResponse{ID: p.ProgramID, Name: p.Name}
	}
	return out
}
