package services_test

import (
	"context"
	"testing"

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

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo *MockBudgetRepository
	mockAuditRepo  *MockAuditRepository
	store          *cache.Store
	service        portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.store = cache.NewStore()
	suite.store.PaymentCenters.Replace([]domain.PaymentCenter{
		{PaymentCenterID: "pc-main", Name: "Main Office"},
		{PaymentCenterID: "pc-east", Name: "East Branch"},
	})
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockAuditRepo, suite.store)
}

func (suite *BudgetServiceTestSuite) TestSaveBudgets_InsertThenUpdate() {
	ctx := context.Background()
	budgetID := domain.BudgetID("pc-main", 2025)

	// First save: no remote row exists, so the batch inserts.
	suite.mockBudgetRepo.On("BudgetExists", ctx, budgetID).Return(false, nil).Once()
	suite.mockBudgetRepo.On("InsertBudget", ctx, mock.MatchedBy(func(b domain.PaymentCenterBudget) bool {
		return b.BudgetID == budgetID && b.Amount.Equal(decimal.NewFromInt(1000))
	})).Return(nil).Once()
	suite.mockAuditRepo.On("AppendEntry", ctx, mock.MatchedBy(func(e domain.AuditLogEntry) bool {
		return e.Action == domain.AuditCreate && e.EntityID == budgetID
	})).Return(nil).Once()

	first, err := suite.service.SaveBudgets(ctx, dto.SaveBudgetsRequest{
		Year:    2025,
		Amounts: map[string]string{"pc-main": "1000"},
	}, "user-1")
	suite.Require().NoError(err)
	suite.Require().Len(first, 1)

	// Second save for the same (center, year): the row exists, so the batch
	// updates in place and the original creation fields survive.
	existing := first[0]
	suite.mockBudgetRepo.On("BudgetExists", ctx, budgetID).Return(true, nil).Once()
	suite.mockBudgetRepo.On("FindBudgetByID", ctx, budgetID).Return(&existing, nil).Once()
	suite.mockBudgetRepo.On("UpdateBudget", ctx, mock.MatchedBy(func(b domain.PaymentCenterBudget) bool {
		return b.BudgetID == budgetID && b.Amount.Equal(decimal.NewFromInt(1500)) &&
			b.CreatedBy == existing.CreatedBy
	})).Return(nil).Once()
	suite.mockAuditRepo.On("AppendEntry", ctx, mock.MatchedBy(func(e domain.AuditLogEntry) bool {
		return e.Action == domain.AuditUpdate && e.EntityID == budgetID
	})).Return(nil).Once()

	second, err := suite.service.SaveBudgets(ctx, dto.SaveBudgetsRequest{
		Year:    2025,
		Amounts: map[string]string{"pc-main": "1500"},
	}, "user-1")
	suite.Require().NoError(err)
	suite.Require().Len(second, 1)

	// One row per (center, year), never a duplicate.
	suite.Equal(1, suite.store.Budgets.Len())
	got, ok := suite.store.Budgets.Get(budgetID)
	suite.Require().True(ok)
	suite.True(got.Amount.Equal(decimal.NewFromInt(1500)))

	suite.mockBudgetRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestSaveBudgets_InvalidAmountRejectsWholeBatch() {
	ctx := context.Background()

	_, err := suite.service.SaveBudgets(ctx, dto.SaveBudgetsRequest{
		Year:    2025,
		Amounts: map[string]string{"pc-main": "1000", "pc-east": "not-a-number"},
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "BudgetExists", mock.Anything, mock.Anything)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "InsertBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestSaveBudgets_NegativeAmount() {
	ctx := context.Background()

	_, err := suite.service.SaveBudgets(ctx, dto.SaveBudgetsRequest{
		Year:    2025,
		Amounts: map[string]string{"pc-main": "-50"},
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "InsertBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestSaveBudgets_UnknownPaymentCenter() {
	ctx := context.Background()

	_, err := suite.service.SaveBudgets(ctx, dto.SaveBudgetsRequest{
		Year:    2025,
		Amounts: map[string]string{"pc-unknown": "100"},
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "BudgetExists", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestListBudgetsForYear() {
	ctx := context.Background()
	suite.store.Budgets.Replace([]domain.PaymentCenterBudget{
		{BudgetID: domain.BudgetID("pc-main", 2024), PaymentCenterID: "pc-main", Year: 2024},
		{BudgetID: domain.BudgetID("pc-main", 2025), PaymentCenterID: "pc-main", Year: 2025},
		{BudgetID: domain.BudgetID("pc-east", 2025), PaymentCenterID: "pc-east", Year: 2025},
	})
	suite.store.MarkLoaded()

	out, err := suite.service.ListBudgetsForYear(ctx, 2025)

	suite.Require().NoError(err)
	suite.Len(out, 2)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "FindBudgets", mock.Anything)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
