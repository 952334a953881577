package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tienda/pkg/config"
)

func TestNewPoolConfig_PorDefecto(t *testing.T) {
	cfg, err := newPoolConfig(config.DBConfig{DatabaseURL: "postgres://u:p@db.local:5433/tienda?sslmode=disable"})
	require.NoError(t, err)

	assert.Equal(t, "db.local", cfg.ConnConfig.Host)
	assert.Equal(t, uint16(5433), cfg.ConnConfig.Port)
	assert.Equal(t, "tienda", cfg.ConnConfig.Database)
	assert.Equal(t, int32(defaultMaxConns), cfg.MaxConns)
	assert.Equal(t, int32(2), cfg.MinConns)
	assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
	assert.Equal(t, "UTC", cfg.ConnConfig.RuntimeParams["timezone"])
}

func TestNewPoolConfig_DesdeCamposYMaxConns(t *testing.T) {
	cfg, err := newPoolConfig(config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "inventario",
		Password: "p@ss:word",
		DBName:   "tienda",
		SSLMode:  "disable",
		MaxConns: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.ConnConfig.Host)
	assert.Equal(t, "p@ss:word", cfg.ConnConfig.Password)
	assert.Equal(t, int32(7), cfg.MaxConns)
}

func TestNewPoolConfig_DSNInvalido(t *testing.T) {
	_, err := newPoolConfig(config.DBConfig{DatabaseURL: "postgres://u@host:notaport/db"})
	assert.Error(t, err)
}
