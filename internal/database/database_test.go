package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)

	assert.NoError(t, db.HealthCheck())
	assert.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck())
}

func TestCreateIndexes_Idempotent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	assert.NoError(t, db.CreateIndexes())
	assert.NoError(t, db.CreateIndexes())
	assert.True(t, db.Migrator().HasIndex("budget_alerts", "idx_budget_alerts_user_unread"))
}
