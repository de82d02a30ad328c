package repository

import (
	"errors"
	"testing"

	"llm-console/internal/models"

	"gorm.io/gorm"
)

func TestConfigurationRepository_SetDefault_ScopedIndependently(t *testing.T) {
	db := setupTestDB(t)
	configurationRepo := NewConfigurationRepository(db)
	modelRepo := NewModelRepository(db)

	provider := createTestProvider(t, db, "openai-main", 5, true)
	model := createTestModel(t, db, provider.ID, "model-a", true)

	c1 := createTestConfiguration(t, db, "cfg-one", nil, true)
	c2 := createTestConfiguration(t, db, "cfg-two", &model.ID, true)

	// 模型和配置的默认标记互不影响
	if err := modelRepo.SetDefault(model.ID); err != nil {
		t.Fatalf("设置默认模型失败: %v", err)
	}
	if err := configurationRepo.SetDefault(c1.ID); err != nil {
		t.Fatalf("设置默认配置失败: %v", err)
	}
	if err := configurationRepo.SetDefault(c2.ID); err != nil {
		t.Fatalf("设置默认配置失败: %v", err)
	}

	var configDefaults int64
	if err := db.Model(&models.Configuration{}).Where("is_default = ?", true).Count(&configDefaults).Error; err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if configDefaults != 1 {
		t.Errorf("默认配置数量 = %d, 期望 1", configDefaults)
	}

	defaultModel, err := modelRepo.GetDefault()
	if err != nil {
		t.Fatalf("默认模型应保持不变: %v", err)
	}
	if defaultModel.ID != model.ID {
		t.Error("配置的默认切换不应影响模型的默认标记")
	}

	reloaded, err := configurationRepo.GetDefault()
	if err != nil {
		t.Fatalf("读取默认配置失败: %v", err)
	}
	if reloaded.ID != c2.ID {
		t.Errorf("默认配置 = %d, 期望 %d", reloaded.ID, c2.ID)
	}
	if !reloaded.IsActive {
		t.Error("默认配置必须处于启用状态")
	}
}

func TestConfigurationRepository_NilModelIsValid(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConfigurationRepository(db)

	configuration := createTestConfiguration(t, db, "cfg-unbound", nil, true)

	reloaded, err := repo.GetByID(configuration.ID)
	if err != nil {
		t.Fatalf("读取配置失败: %v", err)
	}
	if reloaded.ModelID != nil {
		t.Error("未绑定模型的配置ModelID应为nil")
	}
}

func TestConfigurationRepository_ToggleActive_ClearsDefaultOnDeactivate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConfigurationRepository(db)

	configuration := createTestConfiguration(t, db, "cfg-one", nil, true)
	if err := repo.SetDefault(configuration.ID); err != nil {
		t.Fatalf("设置默认配置失败: %v", err)
	}

	state, err := repo.ToggleActive(configuration.ID)
	if err != nil {
		t.Fatalf("切换失败: %v", err)
	}
	if state {
		t.Fatal("切换后应为停用")
	}

	_, err = repo.GetDefault()
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("停用默认配置后GetDefault = %v, 期望 gorm.ErrRecordNotFound", err)
	}
}

func TestPromptTaskRepository_ActiveQueries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPromptTaskRepository(db)

	createTestTask(t, db, "summarize", "text", true)
	createTestTask(t, db, "translate", "text", false)
	createTestTask(t, db, "describe-image", "vision", true)

	tasks, err := repo.GetActiveByCategory("text")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Identifier != "summarize" {
		t.Errorf("text分类下启用任务 = %v", tasks)
	}

	total, err := repo.Count()
	if err != nil {
		t.Fatalf("Count失败: %v", err)
	}
	active, err := repo.CountActive()
	if err != nil {
		t.Fatalf("CountActive失败: %v", err)
	}
	if total != 3 || active != 2 {
		t.Errorf("total = %d, active = %d, 期望 3 和 2", total, active)
	}
}
