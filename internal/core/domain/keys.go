package domain

// Key implementations let domain records live in the generic entity cache.

func (u User) Key() string                { return u.UserID }
func (s Supplier) Key() string            { return s.SupplierID }
func (p PaymentCenter) Key() string       { return p.PaymentCenterID }
func (p PaymentType) Key() string         { return p.PaymentTypeID }
func (e ExpenseStatus) Key() string       { return e.ExpenseStatusID }
func (p Program) Key() string             { return p.ProgramID }
func (b PaymentCenterBudget) Key() string { return b.BudgetID }
func (e Expense) Key() string             { return e.ExpenseID }
func (j JournalEntry) Key() string        { return j.JournalEntryID }
func (a AuditLogEntry) Key() string       { return a.EntryID }
