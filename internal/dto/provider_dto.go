package dto

// CreateProviderRequest 创建提供商请求
type CreateProviderRequest struct {
	Identifier  string `json:"identifier" binding:"required" validate:"required,identifier"`
	Name        string `json:"name" binding:"required"`
	AdapterType string `json:"adapter_type"`
	BaseURL     string `json:"base_url" binding:"required"`
	APIKey      string `json:"api_key"`
	Priority    int    `json:"priority"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateProviderRequest 更新提供商请求
type UpdateProviderRequest struct {
	Name        *string `json:"name"`
	AdapterType *string `json:"adapter_type"`
	BaseURL     *string `json:"base_url"`
	APIKey      *string `json:"api_key"`
	Priority    *int    `json:"priority"`
	IsActive    *bool   `json:"is_active"`
}

// ProviderResponse 提供商响应
type ProviderResponse struct {
	ID          uint   `json:"id"`
	Identifier  string `json:"identifier"`
	Name        string `json:"name"`
	AdapterType string `json:"adapter_type"`
	BaseURL     string `json:"base_url"`
	APIKey      string `json:"api_key"`
	Priority    int    `json:"priority"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ProviderListResponse 提供商列表响应
type ProviderListResponse struct {
	Success   bool               `json:"success"`
	Providers []ProviderResponse `json:"providers"`
	Total     int64              `json:"total"`
}
