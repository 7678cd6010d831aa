package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCredentialService_HashVerify(t *testing.T) {
	s := NewCredentialService(&MockUserRepo{}, testConfig(), testLogger())

	hash, err := s.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, s.Verify("correct horse", hash))
	assert.False(t, s.Verify("wrong horse", hash))
	assert.False(t, s.Verify("correct horse", "not-a-phc-string"))
}

func TestCredentialService_Tokens(t *testing.T) {
	cfg := testConfig()
	s := NewCredentialService(&MockUserRepo{}, cfg, testLogger()).(*credentialService)

	token, exp, err := s.IssueToken(7)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)

	id, err := s.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	t.Run("tampered", func(t *testing.T) {
		_, err := s.DecodeToken(token + "x")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.DecodeToken("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		defer func() { s.now = time.Now }()
		old, _, err := s.IssueToken(7)
		require.NoError(t, err)
		_, err = s.DecodeToken(old)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other key", func(t *testing.T) {
		other := testConfig()
		other.Auth.SecretKey = "another-secret"
		foreign, _, err := NewCredentialService(&MockUserRepo{}, other, testLogger()).IssueToken(7)
		require.NoError(t, err)
		_, err = s.DecodeToken(foreign)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("non numeric subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Auth.SecretKey))
		require.NoError(t, err)
		_, err = s.DecodeToken(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestCredentialService_Login(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	hash, err := NewCredentialService(&MockUserRepo{}, cfg, testLogger()).Hash("s3cret-pass")
	require.NoError(t, err)
	stored := &model.User{ID: 5, Email: "ann@example.com", PasswordHash: hash}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(*MockUserRepo)
		wantErr  error
	}{
		{
			name:     "success",
			email:    "ann@example.com",
			password: "s3cret-pass",
			setup: func(r *MockUserRepo) {
				r.On("GetByEmail", ctx, "ann@example.com").Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "ann@example.com",
			password: "nope",
			setup: func(r *MockUserRepo) {
				r.On("GetByEmail", ctx, "ann@example.com").Return(stored, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "s3cret-pass",
			setup: func(r *MockUserRepo) {
				r.On("GetByEmail", ctx, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "repository error",
			email:    "ann@example.com",
			password: "s3cret-pass",
			setup: func(r *MockUserRepo) {
				r.On("GetByEmail", ctx, "ann@example.com").Return(nil, errors.New("db down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &MockUserRepo{}
			tt.setup(r)
			s := NewCredentialService(r, cfg, testLogger())

			out, err := s.Login(ctx, tt.email, tt.password)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, out)
			case tt.name == "repository error":
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrInvalidCredentials)
			default:
				require.NoError(t, err)
				assert.Equal(t, "bearer", out.TokenType)
				id, err := s.DecodeToken(out.AccessToken)
				require.NoError(t, err)
				assert.Equal(t, stored.ID, id)
			}
			r.AssertExpectations(t)
			r.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCredentialService_Authenticate(t *testing.T) {
	ctx := context.Background()
	r := &MockUserRepo{}
	s := NewCredentialService(r, testConfig(), testLogger())

	token, _, err := s.IssueToken(alice.ID)
	require.NoError(t, err)

	r.On("GetByID", ctx, alice.ID).Return(alice, nil).Once()
	u, err := s.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, u.ID)

	r.On("GetByID", ctx, alice.ID).Return(nil, gorm.ErrRecordNotFound).Once()
	_, err = s.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
	r.AssertExpectations(t)
}
