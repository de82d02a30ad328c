package service

import (
	"llm-console/internal/dto"
	"llm-console/internal/models"
	"llm-console/internal/repository"
	"llm-console/internal/utils"
)

// PromptTaskService 任务服务
type PromptTaskService struct {
	taskRepo *repository.PromptTaskRepository
}

// NewPromptTaskService 创建任务服务
func NewPromptTaskService(taskRepo *repository.PromptTaskRepository) *PromptTaskService {
	return &PromptTaskService{
		taskRepo: taskRepo,
	}
}

// toPromptTaskResponse 转换为响应结构
func toPromptTaskResponse(task *models.PromptTask) dto.PromptTaskResponse {
	return dto.PromptTaskResponse{
		ID:         task.ID,
		Identifier: task.Identifier,
		Name:       task.Name,
		Category:   task.Category,
		InputType:  task.InputType,
		IsActive:   task.IsActive,
		CreatedAt:  task.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  task.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GetActiveTasks 获取启用的任务列表
func (s *PromptTaskService) GetActiveTasks() ([]dto.PromptTaskResponse, error) {
	tasks, err := s.taskRepo.GetActive()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PromptTaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = toPromptTaskResponse(&tasks[i])
	}

	return responses, nil
}

// GetActiveTasksByCategory 获取指定分类下启用的任务列表
func (s *PromptTaskService) GetActiveTasksByCategory(category string) ([]dto.PromptTaskResponse, error) {
	tasks, err := s.taskRepo.GetActiveByCategory(category)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PromptTaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = toPromptTaskResponse(&tasks[i])
	}

	return responses, nil
}

// GetAllTasks 获取所有任务(管理员)
func (s *PromptTaskService) GetAllTasks(page, perPage int) (*dto.PaginatedResponse, error) {
	offset := (page - 1) * perPage
	tasks, total, err := s.taskRepo.List(offset, perPage)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PromptTaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = toPromptTaskResponse(&tasks[i])
	}

	return &dto.PaginatedResponse{
		Items:   responses,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// CreateTask 创建任务
func (s *PromptTaskService) CreateTask(req *dto.CreatePromptTaskRequest) (*models.PromptTask, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	inputType := req.InputType
	if inputType == "" {
		inputType = "text"
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	task := &models.PromptTask{
		Identifier: req.Identifier,
		Name:       req.Name,
		Category:   req.Category,
		InputType:  inputType,
		IsActive:   isActive,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateTask 更新任务
func (s *PromptTaskService) UpdateTask(id uint, req *dto.UpdatePromptTaskRequest) error {
	task, err := s.taskRepo.GetByID(id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.InputType != nil {
		task.InputType = *req.InputType
	}
	if req.IsActive != nil {
		task.IsActive = *req.IsActive
	}

	return s.taskRepo.Update(task)
}

// DeleteTask 删除任务
func (s *PromptTaskService) DeleteTask(id uint) error {
	return s.taskRepo.Delete(id)
}

// ToggleTask 切换任务启用状态
func (s *PromptTaskService) ToggleTask(id uint) (bool, error) {
	return s.taskRepo.ToggleActive(id)
}
