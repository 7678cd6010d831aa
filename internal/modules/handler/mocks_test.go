package handler

import (
	"context"
	"time"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
	"github.com/stretchr/testify/mock"
)

type MockCredentialService struct {
	mock.Mock
}

func (m *MockCredentialService) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockCredentialService) Verify(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

func (m *MockCredentialService) IssueToken(userID uint) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockCredentialService) DecodeToken(token string) (uint, error) {
	args := m.Called(token)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockCredentialService) Login(ctx context.Context, email, password string) (*service.TokenOutput, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenOutput), args.Error(1)
}

func (m *MockCredentialService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, principal *model.User, in service.RegisterUserInput) (*model.User, error) {
	args := m.Called(ctx, principal, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, principal *model.User, id uint) (*model.User, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, principal *model.User, offset, limit int) ([]*model.User, error) {
	args := m.Called(ctx, principal, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, principal *model.User, id uint, in service.UpdateUserInput) (*model.User, error) {
	args := m.Called(ctx, principal, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, principal *model.User, id uint) error {
	return m.Called(ctx, principal, id).Error(0)
}

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, principal *model.User, in service.CreateProjectInput, allowDuplicates bool) (*model.Project, bool, error) {
	args := m.Called(ctx, principal, in, allowDuplicates)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*model.Project), args.Bool(1), args.Error(2)
}

func (m *MockProjectService) Get(ctx context.Context, principal *model.User, id uint) (*model.Project, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, principal *model.User, offset, limit int) ([]*model.Project, error) {
	args := m.Called(ctx, principal, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, principal *model.User, id uint, in service.UpdateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, principal, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, principal *model.User, id uint) error {
	return m.Called(ctx, principal, id).Error(0)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Create(ctx context.Context, principal *model.User, projectID uint, in service.CreateServiceInput, allowDuplicates bool) (*model.Service, bool, error) {
	args := m.Called(ctx, principal, projectID, in, allowDuplicates)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*model.Service), args.Bool(1), args.Error(2)
}

func (m *MockCatalogService) Get(ctx context.Context, principal *model.User, projectID, id uint) (*model.Service, error) {
	args := m.Called(ctx, principal, projectID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockCatalogService) List(ctx context.Context, principal *model.User, projectID uint, offset, limit int) ([]*model.Service, error) {
	args := m.Called(ctx, principal, projectID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Service), args.Error(1)
}

func (m *MockCatalogService) Update(ctx context.Context, principal *model.User, projectID, id uint, in service.UpdateServiceInput) (*model.Service, error) {
	args := m.Called(ctx, principal, projectID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockCatalogService) Delete(ctx context.Context, principal *model.User, projectID, id uint) error {
	return m.Called(ctx, principal, projectID, id).Error(0)
}

func (m *MockCatalogService) ListInProject(ctx context.Context, project *model.Project, offset, limit int) ([]*model.Service, error) {
	args := m.Called(ctx, project, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Service), args.Error(1)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, principal *model.User, projectID uint, in service.CreateBookingInput, allowDuplicates bool) (*model.Booking, bool, error) {
	args := m.Called(ctx, principal, projectID, in, allowDuplicates)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*model.Booking), args.Bool(1), args.Error(2)
}

func (m *MockBookingService) CreateInProject(ctx context.Context, project *model.Project, in service.CreateBookingInput, allowDuplicates bool) (*model.Booking, bool, error) {
	args := m.Called(ctx, project, in, allowDuplicates)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*model.Booking), args.Bool(1), args.Error(2)
}

func (m *MockBookingService) Get(ctx context.Context, principal *model.User, projectID, id uint) (*model.Booking, error) {
	args := m.Called(ctx, principal, projectID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingService) List(ctx context.Context, principal *model.User, projectID uint, offset, limit int) ([]*model.Booking, error) {
	args := m.Called(ctx, principal, projectID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

func (m *MockBookingService) Update(ctx context.Context, principal *model.User, projectID, id uint, in service.UpdateBookingInput) (*model.Booking, error) {
	args := m.Called(ctx, principal, projectID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingService) Delete(ctx context.Context, principal *model.User, projectID, id uint) error {
	return m.Called(ctx, principal, projectID, id).Error(0)
}

type MockSubscriberService struct {
	mock.Mock
}

func (m *MockSubscriberService) CreateInProject(ctx context.Context, project *model.Project, in service.CreateSubscriberInput, allowDuplicates bool) (*model.Subscriber, bool, error) {
	args := m.Called(ctx, project, in, allowDuplicates)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*model.Subscriber), args.Bool(1), args.Error(2)
}

func (m *MockSubscriberService) Get(ctx context.Context, principal *model.User, projectID, id uint) (*model.Subscriber, error) {
	args := m.Called(ctx, principal, projectID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscriber), args.Error(1)
}

func (m *MockSubscriberService) List(ctx context.Context, principal *model.User, projectID uint, offset, limit int) ([]*model.Subscriber, error) {
	args := m.Called(ctx, principal, projectID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Subscriber), args.Error(1)
}

func (m *MockSubscriberService) Delete(ctx context.Context, principal *model.User, projectID, id uint) error {
	return m.Called(ctx, principal, projectID, id).Error(0)
}
