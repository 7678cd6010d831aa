package db

import (
	"testing"

	"github.com/serviceflow/serviceflow-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		tls  bool
		want string
	}{
		{name: "tls off leaves dsn alone", dsn: "host=db sslmode=disable", want: "host=db sslmode=disable"},
		{name: "replace keyword sslmode", dsn: "host=db sslmode=disable port=5432", tls: true, want: "host=db sslmode=require port=5432"},
		{name: "append keyword sslmode", dsn: "host=db port=5432", tls: true, want: "host=db port=5432 sslmode=require"},
		{name: "url without query", dsn: "postgres://u:p@db:5432/app", tls: true, want: "postgres://u:p@db:5432/app?sslmode=require"},
		{name: "url with query", dsn: "postgres://u:p@db/app?connect_timeout=5", tls: true, want: "postgres://u:p@db/app?connect_timeout=5&sslmode=require"},
		{name: "url with sslmode", dsn: "postgres://db/app?sslmode=disable", tls: true, want: "postgres://db/app?sslmode=require"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Database: config.DatabaseCfg{DSN: tt.dsn, EnableTLS: tt.tls}}
			assert.Equal(t, tt.want, DSN(cfg))
		})
	}
}
