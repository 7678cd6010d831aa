package service

import (
	"github.com/serviceflow/serviceflow-api/internal/config"
	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"go.uber.org/zap"
)

var (
	alice = &model.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	bob   = &model.User{ID: 2, Name: "Bob", Email: "bob@example.com"}
	root  = &model.User{ID: 3, Name: "Root", Email: "root@example.com", IsSuperuser: true}
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppCfg{Name: "serviceflow-test"},
		Auth: config.AuthCfg{
			SecretKey:                "test-secret-key",
			AccessTokenExpireMinutes: 30,
			PasswordPepper:           "pepper",
			APIKeyPrefix:             "sf_",
			APIKeyHeader:             "X-API-KEY",
		},
	}
}

func testLogger() *zap.Logger { return zap.NewNop() }

// aliceProject is owned by alice.
func aliceProject() *model.Project {
	return &model.Project{ID: 10, UserID: alice.ID, Name: "Salon", APIKey: "sf_alice"}
}

func strPtr(s string) *string { return &s }
