package store

import (
	"testing"

	"lostfound_portal/internal/db"
	"lostfound_portal/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(":memory:")
	require.NoError(t, err)
	// a pooled second connection would see its own empty memory database
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&domain.User{}, &domain.Item{}))
	return gdb
}
