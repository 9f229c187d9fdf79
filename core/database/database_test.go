package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMysqlDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.local",
		Port:     3306,
		User:     "tracker",
		Password: "p@ss:word",
		Name:     "linen_tracker",
	}

	dsn := mysqlDSN(cfg, 15)
	assert.Contains(t, dsn, "@tcp(db.local:3306)/linen_tracker?")
	assert.Contains(t, dsn, "timeout=15s")
	// Password special characters are URL encoded.
	assert.Contains(t, dsn, "p%40ss:word")
	assert.NotContains(t, dsn, "p@ss:word@tcp")
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(Config{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}
