package repository

import (
	"fmt"
	"testing"

	"llm-console/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 创建内存数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("迁移数据库失败: %v", err)
	}

	return db
}

func createTestProvider(t *testing.T, db *gorm.DB, identifier string, priority int, active bool) *models.Provider {
	t.Helper()

	provider := &models.Provider{
		Identifier:  identifier,
		Name:        "Provider " + identifier,
		AdapterType: "openai",
		BaseURL:     "http://localhost:1234/v1",
		Priority:    priority,
		IsActive:    active,
	}
	if err := db.Create(provider).Error; err != nil {
		t.Fatalf("创建测试提供商失败: %v", err)
	}
	return provider
}

func createTestModel(t *testing.T, db *gorm.DB, providerID uint, identifier string, active bool) *models.LLMModel {
	t.Helper()

	model := &models.LLMModel{
		Identifier:      identifier,
		Name:            "Model " + identifier,
		ModelID:         fmt.Sprintf("vendor/%s", identifier),
		ProviderID:      providerID,
		ContextLength:   8192,
		MaxOutputTokens: 1024,
		Capabilities:    models.StringList{"chat"},
		IsActive:        active,
	}
	if err := db.Create(model).Error; err != nil {
		t.Fatalf("创建测试模型失败: %v", err)
	}
	return model
}

func createTestConfiguration(t *testing.T, db *gorm.DB, identifier string, modelID *uint, active bool) *models.Configuration {
	t.Helper()

	configuration := &models.Configuration{
		Identifier: identifier,
		Name:       "Configuration " + identifier,
		ModelID:    modelID,
		IsActive:   active,
	}
	if err := db.Create(configuration).Error; err != nil {
		t.Fatalf("创建测试配置失败: %v", err)
	}
	return configuration
}

func createTestTask(t *testing.T, db *gorm.DB, identifier, category string, active bool) *models.PromptTask {
	t.Helper()

	task := &models.PromptTask{
		Identifier: identifier,
		Name:       "Task " + identifier,
		Category:   category,
		InputType:  "text",
		IsActive:   active,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("创建测试任务失败: %v", err)
	}
	return task
}
