package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"llm-console/internal/dto"
)

// Client OpenAI兼容接口的调用客户端
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// CallOptions 调用选项
type CallOptions struct {
	MaxTokens   int
	Temperature float64
}

// New 创建调用客户端
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// ChatCompletion 调用chat/completions接口
// 每次请求只发起一次上游调用,不做重试
func (c *Client) ChatCompletion(ctx context.Context, model string, messages []dto.Message, options *CallOptions) (*dto.ChatCompletionResponse, error) {
	reqBody := dto.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	}
	if options != nil {
		reqBody.MaxTokens = options.MaxTokens
		reqBody.Temperature = options.Temperature
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("序列化请求失败: %w", err)
	}

	// 构建HTTP请求
	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	// 设置请求头
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	// 发送请求
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	// 读取响应
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	// 检查HTTP状态码
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API返回错误: status=%d, body=%s", resp.StatusCode, string(body))
	}

	// 解析响应
	var result dto.ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}

	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("API返回空choices")
	}

	return &result, nil
}
