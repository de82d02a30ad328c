package dto

// CreateModelRequest 创建模型请求
type CreateModelRequest struct {
	Identifier      string   `json:"identifier" binding:"required" validate:"required,identifier"`
	Name            string   `json:"name" binding:"required"`
	ModelID         string   `json:"model_id" binding:"required"`
	ProviderUID     uint     `json:"provider_uid" binding:"required"`
	ContextLength   int      `json:"context_length"`
	MaxOutputTokens int      `json:"max_output_tokens"`
	Capabilities    []string `json:"capabilities"`
	IsActive        *bool    `json:"is_active"`
}

// UpdateModelRequest 更新模型请求
type UpdateModelRequest struct {
	Name            *string  `json:"name"`
	ModelID         *string  `json:"model_id"`
	ProviderUID     *uint    `json:"provider_uid"`
	ContextLength   *int     `json:"context_length"`
	MaxOutputTokens *int     `json:"max_output_tokens"`
	Capabilities    []string `json:"capabilities"`
	IsActive        *bool    `json:"is_active"`
}

// ModelResponse 模型响应
type ModelResponse struct {
	ID              uint     `json:"id"`
	Identifier      string   `json:"identifier"`
	Name            string   `json:"name"`
	ModelID         string   `json:"model_id"`
	ProviderUID     uint     `json:"provider_uid"`
	ContextLength   int      `json:"context_length"`
	MaxOutputTokens int      `json:"max_output_tokens"`
	Capabilities    []string `json:"capabilities"`
	IsActive        bool     `json:"is_active"`
	IsDefault       bool     `json:"is_default"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// ModelSummary 模型摘要,用于按提供商查询等前端下拉场景
// 字段名是前端契约的一部分,不可改动
type ModelSummary struct {
	UID             uint     `json:"uid"`
	Name            string   `json:"name"`
	ModelID         string   `json:"modelId"`
	ContextLength   int      `json:"contextLength"`
	MaxOutputTokens int      `json:"maxOutputTokens"`
	Capabilities    []string `json:"capabilities"`
	IsDefault       bool     `json:"isDefault"`
}

// ModelsByProviderResponse 按提供商查询模型响应
type ModelsByProviderResponse struct {
	Success bool           `json:"success"`
	Models  []ModelSummary `json:"models"`
}

// ModelLookupResponse 模型查找响应
type ModelLookupResponse struct {
	Success bool         `json:"success"`
	Model   ModelSummary `json:"model"`
}

// ModelListResponse 模型列表响应
type ModelListResponse struct {
	Success bool            `json:"success"`
	Models  []ModelResponse `json:"models"`
	Total   int64           `json:"total"`
}
