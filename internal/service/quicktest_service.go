package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"llm-console/internal/config"
	"llm-console/internal/dto"
	"llm-console/internal/models"
	"llm-console/internal/repository"
	"llm-console/pkg/llmclient"
	"llm-console/pkg/redis_limiter"

	"gorm.io/gorm"
)

// 快速测试的错误分类,handler据此映射HTTP状态码
var (
	// ErrNoProviderSpecified 请求未携带提供商标识,属于客户端输入缺陷
	ErrNoProviderSpecified = errors.New("No provider specified")
	// ErrProviderNotFound 提供商标识格式合法但不存在
	ErrProviderNotFound = errors.New("Provider not found")
	// ErrNoActiveModel 提供商下没有可用的启用模型
	ErrNoActiveModel = errors.New("no active model configured for provider")
	// ErrConcurrencyLimit 该提供商的并发测试槽位已满
	ErrConcurrencyLimit = errors.New("too many concurrent quick tests for provider")
)

// QuickTestService 快速测试服务
// 校验提供商选择和提示词,发起一次外部LLM调用并归一化结果
type QuickTestService struct {
	providerRepo *repository.ProviderRepository
	modelRepo    *repository.ModelRepository
	limiter      *redis_limiter.RedisLimiter
	cfg          *config.Config
}

// NewQuickTestService 创建快速测试服务
// limiter可以为nil,此时不做并发限制
func NewQuickTestService(
	providerRepo *repository.ProviderRepository,
	modelRepo *repository.ModelRepository,
	limiter *redis_limiter.RedisLimiter,
	cfg *config.Config,
) *QuickTestService {
	return &QuickTestService{
		providerRepo: providerRepo,
		modelRepo:    modelRepo,
		limiter:      limiter,
		cfg:          cfg,
	}
}

// Run 执行一次快速测试
// providerSelector为提供商标识符;prompt为空时使用配置的默认提示词,
// 纯空白提示词原样透传;modelID可选,指定时跳过模型解析直接使用
func (s *QuickTestService) Run(ctx context.Context, providerSelector, prompt, modelID string) (*dto.QuickTestResponse, error) {
	// 输入校验必须发生在任何外部调用之前
	if providerSelector == "" {
		return nil, ErrNoProviderSpecified
	}

	provider, err := s.providerRepo.GetByIdentifier(providerSelector)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}

	// 缺失的提示词替换为默认提示词;只含空白的提示词不做修正
	if prompt == "" {
		prompt = s.cfg.LLM.DefaultPrompt
	}

	var maxTokens int
	if modelID == "" {
		model, err := s.resolveModel(provider)
		if err != nil {
			return nil, err
		}
		modelID = model.ModelID
		maxTokens = model.MaxOutputTokens
	}

	// 按提供商限制并发测试数量
	if s.limiter != nil {
		if err := s.limiter.Acquire(ctx, provider.Identifier); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConcurrencyLimit, err)
		}
		defer s.limiter.Release(ctx, provider.Identifier)
	}

	client := llmclient.New(provider.BaseURL, provider.APIKey, s.cfg.LLM.GetRequestTimeout())

	messages := []dto.Message{
		{Role: "user", Content: prompt},
	}

	var options *llmclient.CallOptions
	if maxTokens > 0 {
		options = &llmclient.CallOptions{MaxTokens: maxTokens}
	}

	// 不做重试,每个请求恰好一次外部调用
	resp, err := client.ChatCompletion(ctx, modelID, messages, options)
	if err != nil {
		log.Printf("[QuickTest] 提供商 %s 调用失败: %v", provider.Identifier, err)
		return nil, err
	}

	usedModel := resp.Model
	if usedModel == "" {
		usedModel = modelID
	}

	return &dto.QuickTestResponse{
		Success: true,
		Content: resp.Choices[0].Message.Content,
		Model:   usedModel,
		Usage: dto.UsageInfo{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// resolveModel 解析用于测试的模型
// 优先使用属于该提供商的全局默认模型,否则取该提供商下第一个启用模型
func (s *QuickTestService) resolveModel(provider *models.Provider) (*models.LLMModel, error) {
	defaultModel, err := s.modelRepo.GetDefault()
	if err == nil && defaultModel.ProviderID == provider.ID {
		return defaultModel, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	candidates, err := s.modelRepo.GetActiveByProvider(provider.ID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoActiveModel, provider.Identifier)
	}

	return &candidates[0], nil
}
