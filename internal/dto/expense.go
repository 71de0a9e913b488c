package dto

import (
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest carries a new expense. All reference ids must resolve
// to existing rows; foreign-key violations come back classified.
type CreateExpenseRequest struct {
	ExpenseDate     time.Time       `json:"expenseDate" binding:"required" time_format:"2006-01-02"`
	Description     string          `json:"description" binding:"required"`
	SupplierID      string          `json:"supplierID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required,nonneg"`
	PaymentTypeID   string          `json:"paymentTypeID" binding:"required"`
	PaymentCenterID string          `json:"paymentCenterID" binding:"required"`
	ExpenseStatusID string          `json:"expenseStatusID" binding:"required"`
	Notes           string          `json:"notes"`
}

// UpdateExpenseRequest uses pointers to distinguish omitted fields.
type UpdateExpenseRequest struct {
	ExpenseDate     *time.Time       `json:"expenseDate"`
	Description     *string          `json:"description"`
	SupplierID      *string          `json:"supplierID"`
	Amount          *decimal.Decimal `json:"amount" binding:"omitempty,nonneg"`
	PaymentTypeID   *string          `json:"paymentTypeID"`
	PaymentCenterID *string          `json:"paymentCenterID"`
	ExpenseStatusID *string          `json:"expenseStatusID"`
	Notes           *string          `json:"notes"`
}

// ExpenseResponse is the outward shape of an expense.
type ExpenseResponse struct {
	ExpenseID       string          `json:"expenseID"`
	ExpenseDate     time.Time       `json:"expenseDate"`
	Description     string          `json:"description"`
	SupplierID      string          `json:"supplierID"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentTypeID   string          `json:"paymentTypeID"`
	PaymentCenterID string          `json:"paymentCenterID"`
	ExpenseStatusID string          `json:"expenseStatusID"`
	Notes           string          `json:"notes"`
	CreatedBy       string          `json:"createdBy"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:       e.ExpenseID,
		ExpenseDate:     e.ExpenseDate,
		Description:     e.Description,
		SupplierID:      e.SupplierID,
		Amount:          e.Amount,
		PaymentTypeID:   e.PaymentTypeID,
		PaymentCenterID: e.PaymentCenterID,
		ExpenseStatusID: e.ExpenseStatusID,
		Notes:           e.Notes,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
	}
}

// ToExpenseResponses converts a slice of domain expenses.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = ToExpenseResponse(&expenses[i])
	}
	return out
}
