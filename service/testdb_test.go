package service

import (
	"fmt"
	"strings"
	"testing"

	"tailorshop-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared in-memory database per test so parallel connections in
	// the pool see the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Order{},
		&models.Fabric{},
		&models.MaterialUsage{},
		&models.Waste{},
		&models.MessageTemplate{},
		&models.MessageLog{},
		&models.ProviderConfig{},
		&models.Document{},
		&models.DocumentVersion{},
		&models.DocumentApproval{},
	))
	return db
}
