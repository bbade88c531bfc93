package service

import (
	"path/filepath"
	"testing"

	"bookgram/backend/common"
	"bookgram/backend/model"

	"github.com/stretchr/testify/assert"
)

// setupTestDB points the globals at a throwaway sqlite database and upload
// dir, initializes the schema and returns a restore func.
func setupTestDB(t *testing.T) func() {
	t.Helper()
	originalDSN := common.DatabaseDSN
	originalSQLitePath := common.SQLitePath
	originalUploadPath := common.UploadPath

	common.DatabaseDSN = ""
	common.SQLitePath = filepath.Join(t.TempDir(), "service_test.db")
	common.UploadPath = filepath.Join(t.TempDir(), "uploads")

	err := model.InitDB()
	assert.NoError(t, err)

	return func() {
		common.DatabaseDSN = originalDSN
		common.SQLitePath = originalSQLitePath
		common.UploadPath = originalUploadPath
	}
}

// seededUser returns the user created by createTestUserIfNeed.
func seededUser(t *testing.T) *model.User {
	t.Helper()
	var user model.User
	err := model.DB.Where("email = ?", "test@bookgram.com").First(&user).Error
	assert.NoError(t, err)
	return &user
}
