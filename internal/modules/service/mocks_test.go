package service

import (
	"context"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/serviceflow/serviceflow-api/internal/modules/repo"
	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

// Register runs decide against the mocked user count: Return(count, insertErr).
func (m *MockUserRepo) Register(ctx context.Context, u *model.User, decide repo.RegisterFunc) error {
	args := m.Called(ctx, u)
	superuser, err := decide(args.Get(0).(int64))
	if err != nil {
		return err
	}
	if err := args.Error(1); err != nil {
		return err
	}
	u.ID = uint(args.Get(0).(int64)) + 1
	u.IsSuperuser = superuser
	return nil
}

func (m *MockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context, offset, limit int) ([]*model.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, u *model.User, updates map[string]interface{}) error {
	args := m.Called(ctx, u, updates)
	return args.Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) FindOrCreate(ctx context.Context, p *model.Project) (*model.Project, bool, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*model.Project), args.Bool(1), args.Error(2)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) GetDetailed(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) GetByAPIKey(ctx context.Context, apiKey string) (*model.Project, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) APIKeysByUser(ctx context.Context, userID uint) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProjectRepo) List(ctx context.Context, ownerID *uint, offset, limit int) ([]*model.Project, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, p *model.Project, updates map[string]interface{}) error {
	args := m.Called(ctx, p, updates)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockServiceRepo struct {
	mock.Mock
}

func (m *MockServiceRepo) Create(ctx context.Context, s *model.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepo) FindOrCreate(ctx context.Context, s *model.Service) (*model.Service, bool, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*model.Service), args.Bool(1), args.Error(2)
}

func (m *MockServiceRepo) GetWithOwner(ctx context.Context, id uint) (*model.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockServiceRepo) List(ctx context.Context, projectID uint, ownerID *uint, offset, limit int) ([]*model.Service, error) {
	args := m.Called(ctx, projectID, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Service), args.Error(1)
}

func (m *MockServiceRepo) Update(ctx context.Context, s *model.Service, updates map[string]interface{}) error {
	args := m.Called(ctx, s, updates)
	return args.Error(0)
}

func (m *MockServiceRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *model.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepo) FindOrCreate(ctx context.Context, b *model.Booking) (*model.Booking, bool, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*model.Booking), args.Bool(1), args.Error(2)
}

func (m *MockBookingRepo) GetWithOwner(ctx context.Context, id uint) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepo) List(ctx context.Context, projectID uint, ownerID *uint, offset, limit int) ([]*model.Booking, error) {
	args := m.Called(ctx, projectID, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

func (m *MockBookingRepo) Update(ctx context.Context, b *model.Booking, updates map[string]interface{}) error {
	args := m.Called(ctx, b, updates)
	return args.Error(0)
}

func (m *MockBookingRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSubscriberRepo struct {
	mock.Mock
}

func (m *MockSubscriberRepo) Create(ctx context.Context, s *model.Subscriber) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubscriberRepo) GetByEmail(ctx context.Context, projectID uint, email string) (*model.Subscriber, error) {
	args := m.Called(ctx, projectID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepo) GetOrCreate(ctx context.Context, s *model.Subscriber) (*model.Subscriber, bool, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*model.Subscriber), args.Bool(1), args.Error(2)
}

func (m *MockSubscriberRepo) GetWithOwner(ctx context.Context, id uint) (*model.Subscriber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepo) List(ctx context.Context, projectID uint, ownerID *uint, offset, limit int) ([]*model.Subscriber, error) {
	args := m.Called(ctx, projectID, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAPIKeyCache struct {
	mock.Mock
}

func (m *MockAPIKeyCache) Get(ctx context.Context, apiKey string) (*model.Project, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockAPIKeyCache) Set(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockAPIKeyCache) Invalidate(ctx context.Context, apiKey string) error {
	args := m.Called(ctx, apiKey)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, body any) error {
	args := m.Called(ctx, routingKey, body)
	return args.Error(0)
}
