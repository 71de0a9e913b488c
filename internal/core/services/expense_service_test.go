package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/apperrors"
	"github.com/fintrackhq/finance_tracker_app/internal/core/cache"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/core/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockAuditRepo   *MockAuditRepository
	store           *cache.Store
	service         portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.store = cache.NewStore()
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockAuditRepo, suite.store)
}

func (suite *ExpenseServiceTestSuite) seedExpense() domain.Expense {
	expense := domain.Expense{
		ExpenseID:       "exp-1",
		ExpenseDate:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description:     "office chairs",
		SupplierID:      "sup-1",
		Amount:          decimal.NewFromInt(250),
		PaymentTypeID:   "pt-check",
		PaymentCenterID: "pc-main",
		ExpenseStatusID: "es-pending",
	}
	suite.store.Expenses.Append(expense)
	return expense
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		ExpenseDate:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description:     "office chairs",
		SupplierID:      "sup-1",
		Amount:          decimal.NewFromInt(250),
		PaymentTypeID:   "pt-check",
		PaymentCenterID: "pc-main",
		ExpenseStatusID: "es-pending",
	}

	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Description == "office chairs" && e.CreatedBy == "user-1"
	})).Return(nil).Once()
	suite.mockAuditRepo.On("AppendEntry", ctx, mock.AnythingOfType("domain.AuditLogEntry")).Return(nil).Once()

	created, err := suite.service.CreateExpense(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(created.ExpenseID)

	// The new record is readable from the store without a repository fetch.
	got, err := suite.service.GetExpenseByID(ctx, created.ExpenseID)
	suite.Require().NoError(err)
	suite.Equal(created.ExpenseID, got.ExpenseID)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "FindExpenseByID", mock.Anything, mock.Anything)

	suite.Equal(1, suite.store.AuditLog.Len())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Description: "refund",
		Amount:      decimal.NewFromInt(-10),
	}

	_, err := suite.service.CreateExpense(ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestGetExpenseByID_FallsBackToRepository() {
	ctx := context.Background()
	expense := &domain.Expense{ExpenseID: "exp-9", Description: "printer ink"}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "exp-9").Return(expense, nil).Once()

	got, err := suite.service.GetExpenseByID(ctx, "exp-9")

	suite.Require().NoError(err)
	suite.Equal("printer ink", got.Description)
	// The fetched record is cached for the next read.
	suite.True(suite.store.Expenses.Contains("exp-9"))
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_EmptyRequestLeavesRecordUnchanged() {
	ctx := context.Background()
	original := suite.seedExpense()

	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Description == original.Description && e.Amount.Equal(original.Amount) &&
			e.SupplierID == original.SupplierID
	})).Return(nil).Once()
	suite.mockAuditRepo.On("AppendEntry", ctx, mock.AnythingOfType("domain.AuditLogEntry")).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, original.ExpenseID, dto.UpdateExpenseRequest{}, "user-2")

	suite.Require().NoError(err)
	suite.Equal(original.Description, updated.Description)
	suite.True(updated.Amount.Equal(original.Amount))

	// Even a no-op edit is recorded exactly once.
	suite.Equal(1, suite.store.AuditLog.Len())
	suite.mockAuditRepo.AssertNumberOfCalls(suite.T(), "AppendEntry", 1)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_PartialMerge() {
	ctx := context.Background()
	original := suite.seedExpense()

	newAmount := decimal.NewFromInt(300)
	req := dto.UpdateExpenseRequest{Amount: &newAmount}

	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Amount.Equal(newAmount) && e.Description == original.Description
	})).Return(nil).Once()
	suite.mockAuditRepo.On("AppendEntry", ctx, mock.AnythingOfType("domain.AuditLogEntry")).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, original.ExpenseID, req, "user-2")

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(newAmount))
	suite.Equal(original.Description, updated.Description)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_AuditRecordsBeforeAndAfter() {
	ctx := context.Background()
	original := suite.seedExpense()

	newAmount := decimal.NewFromInt(300)
	req := dto.UpdateExpenseRequest{Amount: &newAmount}

	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockAuditRepo.On("AppendEntry", ctx, mock.MatchedBy(func(e domain.AuditLogEntry) bool {
		return e.Action == domain.AuditUpdate &&
			strings.Contains(e.Changes, `"before"`) && strings.Contains(e.Changes, `"250"`) &&
			strings.Contains(e.Changes, `"after"`) && strings.Contains(e.Changes, `"300"`)
	})).Return(nil).Once()

	_, err := suite.service.UpdateExpense(ctx, original.ExpenseID, req, "user-2")

	suite.Require().NoError(err)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_AbsentRecordFailsFast() {
	ctx := context.Background()
	newAmount := decimal.NewFromInt(300)

	_, err := suite.service.UpdateExpense(ctx, "missing", dto.UpdateExpenseRequest{Amount: &newAmount}, "user-2")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "FindExpenseByID", mock.Anything, mock.Anything)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "UpdateExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_Success() {
	ctx := context.Background()
	expense := suite.seedExpense()

	suite.mockExpenseRepo.On("DeleteExpense", ctx, expense.ExpenseID).Return(nil).Once()
	// The deletion entry keeps a full snapshot of the removed record.
	suite.mockAuditRepo.On("AppendEntry", ctx, mock.MatchedBy(func(e domain.AuditLogEntry) bool {
		return e.Action == domain.AuditDelete &&
			strings.Contains(e.Changes, `"office chairs"`) && strings.Contains(e.Changes, `"sup-1"`)
	})).Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, expense.ExpenseID, "user-2")

	suite.Require().NoError(err)
	suite.False(suite.store.Expenses.Contains(expense.ExpenseID))
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_AbsentRecordSkipsRemoteCall() {
	ctx := context.Background()

	err := suite.service.DeleteExpense(ctx, "missing", "user-2")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpense", mock.Anything, mock.Anything)
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "AppendEntry", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_AuditFailureDoesNotFailMutation() {
	ctx := context.Background()
	expense := suite.seedExpense()

	suite.mockExpenseRepo.On("DeleteExpense", ctx, expense.ExpenseID).Return(nil).Once()
	suite.mockAuditRepo.On("AppendEntry", ctx, mock.AnythingOfType("domain.AuditLogEntry")).
		Return(errors.New("audit table unavailable")).Once()

	err := suite.service.DeleteExpense(ctx, expense.ExpenseID, "user-2")

	suite.Require().NoError(err)
	suite.False(suite.store.Expenses.Contains(expense.ExpenseID))
	suite.True(suite.store.Dirty())
	suite.Equal(0, suite.store.AuditLog.Len())
}

func (suite *ExpenseServiceTestSuite) TestFilterExpensesByCenter() {
	ctx := context.Background()
	suite.store.Expenses.Replace([]domain.Expense{
		{ExpenseID: "exp-1", PaymentCenterID: "pc-main"},
		{ExpenseID: "exp-2", PaymentCenterID: "pc-east"},
		{ExpenseID: "exp-3", PaymentCenterID: "pc-main"},
	})
	suite.store.MarkLoaded()

	out, err := suite.service.FilterExpensesByCenter(ctx, "pc-main")

	suite.Require().NoError(err)
	suite.Len(out, 2)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "FindExpenses", mock.Anything)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
