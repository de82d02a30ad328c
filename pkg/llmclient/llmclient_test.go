package llmclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"llm-console/internal/dto"
)

func TestChatCompletion_Success(t *testing.T) {
	var gotAuth string
	var gotReq dto.ChatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("请求路径错误: %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("解析请求体失败: %v", err)
		}
		json.NewEncoder(w).Encode(dto.ChatCompletionResponse{
			Model: "test-model",
			Choices: []dto.Choice{
				{Message: dto.Message{Role: "assistant", Content: "Hello there"}},
			},
			Usage: dto.Usage{PromptTokens: 5, CompletionTokens: 3, TotalTokens: 8},
		})
	}))
	defer server.Close()

	client := New(server.URL, "sk-test", 5*time.Second)
	resp, err := client.ChatCompletion(context.Background(), "test-model", []dto.Message{
		{Role: "user", Content: "hi"},
	}, &CallOptions{MaxTokens: 100})
	if err != nil {
		t.Fatalf("ChatCompletion 失败: %v", err)
	}

	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization头错误: %s", gotAuth)
	}
	if gotReq.Model != "test-model" {
		t.Errorf("请求模型错误: %s", gotReq.Model)
	}
	if gotReq.MaxTokens != 100 {
		t.Errorf("max_tokens错误: %d", gotReq.MaxTokens)
	}
	if resp.Choices[0].Message.Content != "Hello there" {
		t.Errorf("响应内容错误: %s", resp.Choices[0].Message.Content)
	}
	if resp.Usage.TotalTokens != 8 {
		t.Errorf("token用量错误: %d", resp.Usage.TotalTokens)
	}
}

func TestChatCompletion_NoAuthHeaderWhenKeyEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("空密钥不应携带Authorization头: %s", auth)
		}
		json.NewEncoder(w).Encode(dto.ChatCompletionResponse{
			Choices: []dto.Choice{{Message: dto.Message{Content: "ok"}}},
		})
	}))
	defer server.Close()

	client := New(server.URL, "", 5*time.Second)
	if _, err := client.ChatCompletion(context.Background(), "m", []dto.Message{{Role: "user", Content: "hi"}}, nil); err != nil {
		t.Fatalf("ChatCompletion 失败: %v", err)
	}
}

func TestChatCompletion_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New(server.URL, "bad-key", 5*time.Second)
	if _, err := client.ChatCompletion(context.Background(), "m", []dto.Message{{Role: "user", Content: "hi"}}, nil); err == nil {
		t.Error("上游401应返回错误")
	}
}

func TestChatCompletion_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.ChatCompletionResponse{Model: "m"})
	}))
	defer server.Close()

	client := New(server.URL, "k", 5*time.Second)
	if _, err := client.ChatCompletion(context.Background(), "m", []dto.Message{{Role: "user", Content: "hi"}}, nil); err == nil {
		t.Error("空choices应返回错误")
	}
}

func TestChatCompletion_TrailingSlashBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("baseURL含尾部斜杠时路径错误: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(dto.ChatCompletionResponse{
			Choices: []dto.Choice{{Message: dto.Message{Content: "ok"}}},
		})
	}))
	defer server.Close()

	client := New(server.URL+"/", "k", 5*time.Second)
	if _, err := client.ChatCompletion(context.Background(), "m", []dto.Message{{Role: "user", Content: "hi"}}, nil); err != nil {
		t.Fatalf("ChatCompletion 失败: %v", err)
	}
}
