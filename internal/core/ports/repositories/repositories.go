package repositories

// Container bundles every repository implementation for injection into the
// service layer.
type Container struct {
	User      UserRepository
	Supplier  SupplierRepository
	Reference ReferenceRepository
	Budget    BudgetRepository
	Expense   ExpenseRepository
	Journal   JournalRepository
	Audit     AuditRepository
}
