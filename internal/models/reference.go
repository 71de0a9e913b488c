package models

// Reference/lookup table rows. Rarely mutated, seeded with defaults on
// first run.

type PaymentCenter struct {
	PaymentCenterID string `db:"payment_center_id"`
	Name            string `db:"name"`
	Description     string `db:"description"`
	AuditFields
}

type PaymentType struct {
	PaymentTypeID string `db:"payment_type_id"`
	Name          string `db:"name"`
	AuditFields
}

type ExpenseStatus struct {
	ExpenseStatusID string `db:"expense_status_id"`
	Name            string `db:"name"`
	AuditFields
}

type Program struct {
	ProgramID string `db:"program_id"`
	Name      string `db:"name"`
	AuditFields
}
