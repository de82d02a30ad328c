package dto

// PaginatedResponse 分页响应
type PaginatedResponse struct {
	Items   interface{} `json:"data"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}

// ToggleResponse 启用状态切换响应
type ToggleResponse struct {
	Success  bool `json:"success"`
	IsActive bool `json:"isActive"`
}

// SuccessOnly 仅返回成功标记的响应
type SuccessOnly struct {
	Success bool `json:"success"`
}

// StatsResponse 统计概览响应
type StatsResponse struct {
	Success        bool       `json:"success"`
	Providers      KindCounts `json:"providers"`
	Models         KindCounts `json:"models"`
	Configurations KindCounts `json:"configurations"`
	Tasks          KindCounts `json:"tasks"`
}

// KindCounts 某类实体的数量统计
type KindCounts struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}
