package handler

import (
	"fmt"
	"net/url"
	"testing"

	"llm-console/internal/models"
)

func TestToggleModel_MissingUID(t *testing.T) {
	env := setupTestEnv(t)

	code, body := env.postForm(t, "/api/admin/models/toggle", url.Values{})
	if code != 400 {
		t.Errorf("状态码 = %d, 期望 400", code)
	}
	assertErrEnvelope(t, body, "No model UID specified")
}

func TestToggleModel_InvalidUID(t *testing.T) {
	env := setupTestEnv(t)

	for _, raw := range []string{"abc", "0", "-3"} {
		code, body := env.postForm(t, "/api/admin/models/toggle", url.Values{"uid": {raw}})
		if code != 400 {
			t.Errorf("uid=%q 状态码 = %d, 期望 400", raw, code)
		}
		assertErrEnvelope(t, body, "No model UID specified")
	}
}

func TestToggleModel_NotFound(t *testing.T) {
	env := setupTestEnv(t)

	code, body := env.postForm(t, "/api/admin/models/toggle", url.Values{"uid": {"999"}})
	if code != 404 {
		t.Errorf("状态码 = %d, 期望 404", code)
	}
	assertErrEnvelope(t, body, "Model not found")
}

func TestToggleModel_Involution(t *testing.T) {
	env := setupTestEnv(t)
	provider := seedProvider(t, env.db, "openai", "http://localhost:1234/v1", true)
	model := seedModel(t, env.db, "gpt4", "gpt-4", provider.ID, true, false)

	form := url.Values{"uid": {fmt.Sprintf("%d", model.ID)}}

	// 第一次切换: 启用→停用
	code, body := env.postForm(t, "/api/admin/models/toggle", form)
	if code != 200 {
		t.Fatalf("状态码 = %d, 期望 200", code)
	}
	if success, _ := body["success"].(bool); !success {
		t.Errorf("success应为true")
	}
	if isActive, _ := body["isActive"].(bool); isActive {
		t.Errorf("第一次切换后isActive应为false")
	}

	// 第二次切换: 恢复原状
	code, body = env.postForm(t, "/api/admin/models/toggle", form)
	if code != 200 {
		t.Fatalf("状态码 = %d, 期望 200", code)
	}
	if isActive, _ := body["isActive"].(bool); !isActive {
		t.Errorf("第二次切换后isActive应为true")
	}

	var stored models.LLMModel
	if err := env.db.First(&stored, model.ID).Error; err != nil {
		t.Fatalf("查询模型失败: %v", err)
	}
	if !stored.IsActive {
		t.Errorf("两次切换后数据库中模型应为启用状态")
	}
}

func TestSetDefaultModel_MovesFlag(t *testing.T) {
	env := setupTestEnv(t)
	provider := seedProvider(t, env.db, "openai", "http://localhost:1234/v1", true)
	modelA := seedModel(t, env.db, "model-a", "gpt-4", provider.ID, true, true)
	modelB := seedModel(t, env.db, "model-b", "gpt-4o", provider.ID, true, false)

	code, body := env.postForm(t, "/api/admin/models/default",
		url.Values{"uid": {fmt.Sprintf("%d", modelB.ID)}})
	if code != 200 {
		t.Fatalf("状态码 = %d, 期望 200, body=%v", code, body)
	}
	if success, _ := body["success"].(bool); !success {
		t.Errorf("success应为true")
	}

	var storedA, storedB models.LLMModel
	env.db.First(&storedA, modelA.ID)
	env.db.First(&storedB, modelB.ID)
	if storedA.IsDefault {
		t.Errorf("旧默认模型的is_default应被清除")
	}
	if !storedB.IsDefault {
		t.Errorf("新默认模型的is_default应被设置")
	}

	var defaultCount int64
	env.db.Model(&models.LLMModel{}).Where("is_default = ?", true).Count(&defaultCount)
	if defaultCount != 1 {
		t.Errorf("默认模型数量 = %d, 期望 1", defaultCount)
	}
}

func TestSetDefaultModel_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	provider := seedProvider(t, env.db, "openai", "http://localhost:1234/v1", true)
	existing := seedModel(t, env.db, "model-a", "gpt-4", provider.ID, true, true)

	code, body := env.postForm(t, "/api/admin/models/default", url.Values{"uid": {"999"}})
	if code != 404 {
		t.Errorf("状态码 = %d, 期望 404", code)
	}
	assertErrEnvelope(t, body, "Model not found")

	// 现有默认标记不受影响
	var stored models.LLMModel
	env.db.First(&stored, existing.ID)
	if !stored.IsDefault {
		t.Errorf("设置失败后现有默认模型应保持不变")
	}
}

func TestGetModelsByProvider(t *testing.T) {
	env := setupTestEnv(t)
	provider := seedProvider(t, env.db, "openai", "http://localhost:1234/v1", true)
	other := seedProvider(t, env.db, "anthropic", "http://localhost:1235/v1", true)
	seedModel(t, env.db, "gpt4", "gpt-4", provider.ID, true, true)
	seedModel(t, env.db, "gpt4-off", "gpt-4-old", provider.ID, false, false)
	seedModel(t, env.db, "claude", "claude-3", other.ID, true, false)

	code, body := env.get(t, fmt.Sprintf("/api/admin/models/by-provider?providerUid=%d", provider.ID))
	if code != 200 {
		t.Fatalf("状态码 = %d, 期望 200", code)
	}
	if success, _ := body["success"].(bool); !success {
		t.Errorf("success应为true")
	}

	modelList, ok := body["models"].([]interface{})
	if !ok {
		t.Fatalf("models字段缺失或类型错误: %v", body["models"])
	}
	if len(modelList) != 1 {
		t.Fatalf("模型数量 = %d, 期望 1 (停用模型和其他提供商的模型应被过滤)", len(modelList))
	}

	// 字段名是前端契约,必须为camelCase
	entry := modelList[0].(map[string]interface{})
	for _, key := range []string{"uid", "name", "modelId", "contextLength", "maxOutputTokens", "isDefault"} {
		if _, present := entry[key]; !present {
			t.Errorf("模型摘要缺少字段 %q: %v", key, entry)
		}
	}
	if entry["modelId"] != "gpt-4" {
		t.Errorf("modelId = %v, 期望 gpt-4", entry["modelId"])
	}
}

func TestGetModelsByProvider_MissingUID(t *testing.T) {
	env := setupTestEnv(t)

	code, body := env.get(t, "/api/admin/models/by-provider")
	if code != 400 {
		t.Errorf("状态码 = %d, 期望 400", code)
	}
	assertErrEnvelope(t, body, "No provider UID specified")
}

func TestLookupModel(t *testing.T) {
	env := setupTestEnv(t)
	provider := seedProvider(t, env.db, "openai", "http://localhost:1234/v1", true)
	seedModel(t, env.db, "gpt4", "gpt-4", provider.ID, true, false)

	code, body := env.get(t, "/api/admin/models/lookup?modelId=gpt-4")
	if code != 200 {
		t.Fatalf("状态码 = %d, 期望 200", code)
	}
	model, ok := body["model"].(map[string]interface{})
	if !ok {
		t.Fatalf("model字段缺失: %v", body)
	}
	if model["modelId"] != "gpt-4" {
		t.Errorf("modelId = %v, 期望 gpt-4", model["modelId"])
	}
}

func TestLookupModel_Errors(t *testing.T) {
	env := setupTestEnv(t)

	code, body := env.get(t, "/api/admin/models/lookup")
	if code != 400 {
		t.Errorf("缺少modelId时状态码 = %d, 期望 400", code)
	}
	assertErrEnvelope(t, body, "No model ID specified")

	code, body = env.get(t, "/api/admin/models/lookup?modelId=unknown-model")
	if code != 404 {
		t.Errorf("未知modelId时状态码 = %d, 期望 404", code)
	}
	assertErrEnvelope(t, body, "Model not found")
}
