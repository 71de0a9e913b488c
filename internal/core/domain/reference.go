package domain

// PaymentCenter is a cost center that expenses, budgets and journal lines
// are attributed to.
type PaymentCenter struct {
	PaymentCenterID string `json:"paymentCenterID"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	AuditFields
}

// PaymentType is a lookup row describing how an expense was paid.
type PaymentType struct {
	PaymentTypeID string `json:"paymentTypeID"`
	Name          string `json:"name"`
	AuditFields
}

// ExpenseStatus is a lookup row for the workflow state of an expense.
type ExpenseStatus struct {
	ExpenseStatusID string `json:"expenseStatusID"`
	Name            string `json:"name"`
	AuditFields
}

// Program is a funding program that journal lines are tagged with.
// The store seeds a default set when the collection is found empty.
type Program struct {
	ProgramID string `json:"programID"`
	Name      string `json:"name"`
	AuditFields
}

// DefaultPrograms is the fixed seed set persisted when the Programs
// collection is empty on first load.
var DefaultPrograms = []string{
	"General Fund",
	"Special Projects",
	"Operations",
	"Capital Outlay",
}
