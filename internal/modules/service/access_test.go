package service

import (
	"context"
	"errors"
	"testing"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name      string
		principal *model.User
		owner     uint
		want      bool
	}{
		{name: "no principal", principal: nil, owner: 1, want: false},
		{name: "owner", principal: alice, owner: alice.ID, want: true},
		{name: "other user", principal: bob, owner: alice.ID, want: false},
		{name: "superuser", principal: root, owner: alice.ID, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.principal, tt.owner))
		})
	}
}

func TestAllowUnauthenticatedCreate(t *testing.T) {
	assert.True(t, AllowUnauthenticatedCreate(0))
	assert.False(t, AllowUnauthenticatedCreate(1))
	assert.False(t, AllowUnauthenticatedCreate(42))
}

func TestAccessResolver_ResolveAPIKey(t *testing.T) {
	ctx := context.Background()
	project := aliceProject()

	tests := []struct {
		name    string
		key     string
		setup   func(*MockProjectRepo, *MockAPIKeyCache)
		wantErr error
	}{
		{
			name:    "empty key",
			key:     "",
			setup:   func(*MockProjectRepo, *MockAPIKeyCache) {},
			wantErr: ErrUnauthenticated,
		},
		{
			name: "cache hit skips database",
			key:  "sf_alice",
			setup: func(r *MockProjectRepo, c *MockAPIKeyCache) {
				c.On("Get", ctx, "sf_alice").Return(project, nil)
			},
		},
		{
			name: "cache miss loads and fills",
			key:  "sf_alice",
			setup: func(r *MockProjectRepo, c *MockAPIKeyCache) {
				c.On("Get", ctx, "sf_alice").Return(nil, nil)
				r.On("GetByAPIKey", ctx, "sf_alice").Return(project, nil)
				c.On("Set", ctx, project).Return(nil)
			},
		},
		{
			name: "cache failure falls back to database",
			key:  "sf_alice",
			setup: func(r *MockProjectRepo, c *MockAPIKeyCache) {
				c.On("Get", ctx, "sf_alice").Return(nil, errors.New("redis down"))
				r.On("GetByAPIKey", ctx, "sf_alice").Return(project, nil)
				c.On("Set", ctx, project).Return(errors.New("redis down"))
			},
		},
		{
			name: "unknown key",
			key:  "sf_nope",
			setup: func(r *MockProjectRepo, c *MockAPIKeyCache) {
				c.On("Get", ctx, "sf_nope").Return(nil, nil)
				r.On("GetByAPIKey", ctx, "sf_nope").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &MockProjectRepo{}
			c := &MockAPIKeyCache{}
			tt.setup(r, c)

			got, err := NewAccessResolver(r, c, testLogger()).ResolveAPIKey(ctx, tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, project.ID, got.ID)
			}
			r.AssertExpectations(t)
			c.AssertExpectations(t)
			r.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		})
	}
}
