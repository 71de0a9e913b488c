package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/apperrors"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/fintrackhq/finance_tracker_app/internal/handlers"
	"github.com/fintrackhq/finance_tracker_app/internal/platform/config"
	"github.com/fintrackhq/finance_tracker_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SupplierService ---

type MockSupplierService struct {
	mock.Mock
}

func (m *MockSupplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorID string) (*domain.Supplier, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, updaterID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID, req, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierService) DeleteSupplier(ctx context.Context, supplierID string, deleterID string) error {
	args := m.Called(ctx, supplierID, deleterID)
	return args.Error(0)
}

var _ portssvc.SupplierSvcFacade = (*MockSupplierService)(nil)

// --- Mock UserService (caller resolution for authorization) ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ApproveUser(ctx context.Context, userID string, approverID string) (*domain.User, error) {
	args := m.Called(ctx, userID, approverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) RejectUser(ctx context.Context, userID string, approverID string) (*domain.User, error) {
	args := m.Called(ctx, userID, approverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeactivateUser(ctx context.Context, userID string, updaterID string) (*domain.User, error) {
	args := m.Called(ctx, userID, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---

type SupplierHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockSupplierService *MockSupplierService
	mockUserService     *MockUserService
	cfg                 *config.Config
}

func (suite *SupplierHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterCustomValidators())
	suite.router = gin.New()
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "fintrack-test",
		AdminEmail:        "admin@fintrack.local",
		AuthRateLimit:     "10-M",
	}

	suite.mockSupplierService = new(MockSupplierService)
	suite.mockUserService = new(MockUserService)

	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Supplier: suite.mockSupplierService,
		User:     suite.mockUserService,
	})
}

func (suite *SupplierHandlerTestSuite) bearerToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *SupplierHandlerTestSuite) TestListSuppliers_Success() {
	suppliers := []domain.Supplier{
		{SupplierID: "sup-1", Code: "ACME", Name: "Acme Corp", Status: domain.SupplierActive},
	}
	suite.mockSupplierService.On("ListSuppliers", mock.Anything).Return(suppliers, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/suppliers", nil)
	req.Header.Set("Authorization", suite.bearerToken("user-1"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.SupplierResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("ACME", body[0].Code)
	suite.mockSupplierService.AssertExpectations(suite.T())
}

func (suite *SupplierHandlerTestSuite) TestListSuppliers_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/suppliers", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSupplierService.AssertNotCalled(suite.T(), "ListSuppliers", mock.Anything)
}

func (suite *SupplierHandlerTestSuite) TestCreateSupplier_Success() {
	caller := &domain.User{
		UserID:      "user-1",
		Email:       "jsmith@example.com",
		Role:        domain.RoleUser,
		Permissions: domain.NewPermissionSet(domain.PermSuppliersWrite),
		Status:      domain.StatusActive,
	}
	created := &domain.Supplier{SupplierID: "sup-1", Code: "ACME", Name: "Acme Corp", Status: domain.SupplierActive}

	suite.mockUserService.On("GetUserByID", mock.Anything, "user-1").Return(caller, nil).Once()
	suite.mockSupplierService.On("CreateSupplier", mock.Anything, mock.MatchedBy(func(r dto.CreateSupplierRequest) bool {
		return r.Code == "ACME"
	}), "user-1").Return(created, nil).Once()

	payload, _ := json.Marshal(dto.CreateSupplierRequest{Code: "ACME", Name: "Acme Corp"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/suppliers", bytes.NewReader(payload))
	req.Header.Set("Authorization", suite.bearerToken("user-1"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockSupplierService.AssertExpectations(suite.T())
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *SupplierHandlerTestSuite) TestCreateSupplier_WithoutPermissionForbidden() {
	caller := &domain.User{
		UserID:      "user-1",
		Email:       "jsmith@example.com",
		Role:        domain.RoleUser,
		Permissions: domain.PermissionSet{},
		Status:      domain.StatusActive,
	}
	suite.mockUserService.On("GetUserByID", mock.Anything, "user-1").Return(caller, nil).Once()

	payload, _ := json.Marshal(dto.CreateSupplierRequest{Code: "ACME", Name: "Acme Corp"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/suppliers", bytes.NewReader(payload))
	req.Header.Set("Authorization", suite.bearerToken("user-1"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockSupplierService.AssertNotCalled(suite.T(), "CreateSupplier", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SupplierHandlerTestSuite) TestCreateSupplier_AdminBypassesPermissionSet() {
	admin := &domain.User{
		UserID:      "admin-1",
		Email:       suite.cfg.AdminEmail,
		Role:        domain.RoleUser,
		Permissions: domain.PermissionSet{},
		Status:      domain.StatusActive,
	}
	created := &domain.Supplier{SupplierID: "sup-1", Code: "ACME", Name: "Acme Corp"}

	suite.mockUserService.On("GetUserByID", mock.Anything, "admin-1").Return(admin, nil).Once()
	suite.mockSupplierService.On("CreateSupplier", mock.Anything, mock.AnythingOfType("dto.CreateSupplierRequest"), "admin-1").
		Return(created, nil).Once()

	payload, _ := json.Marshal(dto.CreateSupplierRequest{Code: "ACME", Name: "Acme Corp"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/suppliers", bytes.NewReader(payload))
	req.Header.Set("Authorization", suite.bearerToken("admin-1"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockSupplierService.AssertExpectations(suite.T())
}

func (suite *SupplierHandlerTestSuite) TestGetSupplier_NotFound() {
	suite.mockSupplierService.On("GetSupplierByID", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/suppliers/missing", nil)
	req.Header.Set("Authorization", suite.bearerToken("user-1"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SupplierHandlerTestSuite) TestDeleteSupplier_NotFound() {
	caller := &domain.User{
		UserID:      "user-1",
		Role:        domain.RoleAdmin,
		Permissions: domain.PermissionSet{},
		Status:      domain.StatusActive,
	}
	suite.mockUserService.On("GetUserByID", mock.Anything, "user-1").Return(caller, nil).Once()
	suite.mockSupplierService.On("DeleteSupplier", mock.Anything, "missing", "user-1").
		Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/suppliers/missing", nil)
	req.Header.Set("Authorization", suite.bearerToken("user-1"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestSupplierHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierHandlerTestSuite))
}
