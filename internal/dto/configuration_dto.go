package dto

// CreateConfigurationRequest 创建配置请求
type CreateConfigurationRequest struct {
	Identifier string                 `json:"identifier" binding:"required" validate:"required,identifier"`
	Name       string                 `json:"name" binding:"required"`
	ModelUID   *uint                  `json:"model_uid"`
	Options    map[string]interface{} `json:"options"`
	IsActive   *bool                  `json:"is_active"`
}

// UpdateConfigurationRequest 更新配置请求
type UpdateConfigurationRequest struct {
	Name     *string                `json:"name"`
	ModelUID *uint                  `json:"model_uid"`
	Options  map[string]interface{} `json:"options"`
	IsActive *bool                  `json:"is_active"`
}

// ConfigurationResponse 配置响应
type ConfigurationResponse struct {
	ID         uint                   `json:"id"`
	Identifier string                 `json:"identifier"`
	Name       string                 `json:"name"`
	ModelUID   *uint                  `json:"model_uid"`
	Options    map[string]interface{} `json:"options"`
	IsActive   bool                   `json:"is_active"`
	IsDefault  bool                   `json:"is_default"`
	CreatedAt  string                 `json:"created_at"`
	UpdatedAt  string                 `json:"updated_at"`
}

// ConfigurationListResponse 配置列表响应
type ConfigurationListResponse struct {
	Success        bool                    `json:"success"`
	Configurations []ConfigurationResponse `json:"configurations"`
	Total          int64                   `json:"total"`
}
