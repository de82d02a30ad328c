package handler

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"llm-console/internal/config"
	"llm-console/internal/models"
	"llm-console/internal/repository"
	"llm-console/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv 处理器测试环境,路由不挂认证中间件
type testEnv struct {
	db     *gorm.DB
	engine *gin.Engine
	cfg    *config.Config
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("迁移数据库失败: %v", err)
	}

	cfg := &config.Config{
		LLM: config.LLMConfig{
			DefaultPrompt:  "Hello! Please reply with a short greeting to confirm the connection is working.",
			RequestTimeout: 10,
			MaxConcurrent:  4,
		},
	}

	providerRepo := repository.NewProviderRepository(db)
	modelRepo := repository.NewModelRepository(db)
	configurationRepo := repository.NewConfigurationRepository(db)
	taskRepo := repository.NewPromptTaskRepository(db)

	providerService := service.NewProviderService(providerRepo)
	modelService := service.NewModelService(modelRepo, providerRepo)
	configurationService := service.NewConfigurationService(configurationRepo, modelRepo)
	taskService := service.NewPromptTaskService(taskRepo)
	quickTestService := service.NewQuickTestService(providerRepo, modelRepo, nil, cfg)

	providerHandler := NewProviderHandler(providerService)
	modelHandler := NewModelHandler(modelService)
	configurationHandler := NewConfigurationHandler(configurationService)
	taskHandler := NewPromptTaskHandler(taskService)
	quickTestHandler := NewQuickTestHandler(quickTestService)
	statsHandler := NewStatsHandler(providerRepo, modelRepo, configurationRepo, taskRepo)

	engine := gin.New()
	engine.GET("/api/tasks", taskHandler.GetTasks)
	admin := engine.Group("/api/admin")
	{
		admin.GET("/stats", statsHandler.GetStats)

		admin.GET("/providers/preferred", providerHandler.GetPreferredProvider)
		admin.POST("/providers/toggle", providerHandler.ToggleProvider)

		admin.GET("/configurations/default", configurationHandler.GetDefaultConfiguration)

		admin.GET("/models/by-provider", modelHandler.GetModelsByProvider)
		admin.GET("/models/lookup", modelHandler.LookupModel)
		admin.POST("/models/toggle", modelHandler.ToggleModel)
		admin.POST("/models/default", modelHandler.SetDefaultModel)

		admin.POST("/configurations/toggle", configurationHandler.ToggleConfiguration)
		admin.POST("/configurations/default", configurationHandler.SetDefaultConfiguration)

		admin.POST("/tasks/toggle", taskHandler.ToggleTask)

		admin.POST("/quick-test", quickTestHandler.RunQuickTest)
	}

	return &testEnv{db: db, engine: engine, cfg: cfg}
}

// postForm 发送表单POST请求并解析JSON响应
func (e *testEnv) postForm(t *testing.T, path string, form url.Values) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("解析响应失败: %v, body=%s", err, w.Body.String())
	}
	return w.Code, body
}

// get 发送GET请求并解析JSON响应
func (e *testEnv) get(t *testing.T, path string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("解析响应失败: %v, body=%s", err, w.Body.String())
	}
	return w.Code, body
}

func seedProvider(t *testing.T, db *gorm.DB, identifier, baseURL string, active bool) *models.Provider {
	t.Helper()

	provider := &models.Provider{
		Identifier:  identifier,
		Name:        "Provider " + identifier,
		AdapterType: "openai",
		BaseURL:     baseURL,
		APIKey:      "sk-test",
		IsActive:    active,
	}
	if err := db.Create(provider).Error; err != nil {
		t.Fatalf("创建测试提供商失败: %v", err)
	}
	return provider
}

func seedModel(t *testing.T, db *gorm.DB, identifier, modelID string, providerID uint, active, isDefault bool) *models.LLMModel {
	t.Helper()

	model := &models.LLMModel{
		Identifier:      identifier,
		Name:            "Model " + identifier,
		ModelID:         modelID,
		ProviderID:      providerID,
		ContextLength:   8192,
		MaxOutputTokens: 2048,
		Capabilities:    models.StringList{"chat"},
		IsActive:        active,
		IsDefault:       isDefault,
	}
	if err := db.Create(model).Error; err != nil {
		t.Fatalf("创建测试模型失败: %v", err)
	}
	return model
}

func seedConfiguration(t *testing.T, db *gorm.DB, identifier string, active, isDefault bool) *models.Configuration {
	t.Helper()

	configuration := &models.Configuration{
		Identifier: identifier,
		Name:       "Configuration " + identifier,
		Options:    models.JSONMap{"temperature": 0.7},
		IsActive:   active,
		IsDefault:  isDefault,
	}
	if err := db.Create(configuration).Error; err != nil {
		t.Fatalf("创建测试配置失败: %v", err)
	}
	return configuration
}

func seedTask(t *testing.T, db *gorm.DB, identifier, category string, active bool) *models.PromptTask {
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

// assertErrEnvelope 校验错误信封格式
func assertErrEnvelope(t *testing.T, body map[string]interface{}, wantError string) {
	t.Helper()

	if success, ok := body["success"].(bool); !ok || success {
		t.Errorf("错误响应的success应为false: %v", body["success"])
	}
	if got, _ := body["error"].(string); got != wantError {
		t.Errorf("错误消息 = %q, 期望 %q", got, wantError)
	}
}
