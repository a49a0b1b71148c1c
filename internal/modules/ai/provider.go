package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"

	"github.com/meritlives/tools-core/internal/config"
)

// completion is a single chat-completion request against whichever
// provider the config selects.
type completion struct {
	System      string
	Prompt      string
	MaxTokens   int64
	Temperature float64
}

// Client routes completions to the configured AI provider. Providers
// are tried by id match first, then the first enabled one wins.
type Client struct {
	cfg config.AIConfig
	hc  *http.Client
}

func NewClient(cfg config.AIConfig) *Client {
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.Timeout()},
	}
}

// Enabled reports whether any provider can serve requests.
func (c *Client) Enabled() bool {
	return c.selectProvider() != nil
}

func (c *Client) selectProvider() *config.AIProvider {
	wanted := strings.TrimSpace(c.cfg.DefaultProvider)
	if wanted != "" {
		for _, p := range c.cfg.Providers {
			if p.Enabled && strings.TrimSpace(p.ID) == wanted {
				selected := p
				return &selected
			}
		}
	}
	for _, p := range c.cfg.Providers {
		if p.Enabled {
			selected := p
			return &selected
		}
	}
	return nil
}

func normalizeProviderType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	t = strings.ReplaceAll(t, " ", "")
	return t
}

func (c *Client) complete(ctx context.Context, req completion) (string, error) {
	provider := c.selectProvider()
	if provider == nil {
		return "", ErrNoProvider
	}
	if strings.TrimSpace(provider.APIKey) == "" {
		return "", errors.New("AI provider api key is empty")
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = 1000
	}
	if req.Temperature == 0 {
		req.Temperature = 0.7
	}

	switch t := normalizeProviderType(provider.Type); t {
	case "anthropic":
		return c.completeAnthropic(ctx, provider, req)
	case "openai-compatible", "openaicompatible":
		return c.completeOpenAICompatible(ctx, provider, req)
	default:
		return c.completeOpenAI(ctx, provider, req)
	}
}

func (c *Client) completeOpenAI(ctx context.Context, provider *config.AIProvider, req completion) (string, error) {
	model := strings.TrimSpace(provider.DefaultModel)
	if model == "" {
		model = "gpt-4o-mini"
	}

	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(strings.TrimSpace(provider.APIKey)),
		openaioption.WithMaxRetries(0),
	}
	if normalized := normalizeOpenAIBaseURL(provider.Endpoint); normalized != "" {
		opts = append(opts, openaioption.WithBaseURL(normalized))
	}

	client := openaiclient.NewClient(opts...)
	messages := make([]openaiclient.ChatCompletionMessageParamUnion, 0, 2)
	if strings.TrimSpace(req.System) != "" {
		messages = append(messages, openaiclient.SystemMessage(req.System))
	}
	messages = append(messages, openaiclient.UserMessage(req.Prompt))

	resp, err := client.Chat.Completions.New(ctx, openaiclient.ChatCompletionNewParams{
		Model:       openaiclient.ChatModel(model),
		Messages:    messages,
		MaxTokens:   openaiclient.Int(req.MaxTokens),
		Temperature: openaiclient.Float(req.Temperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", errors.New("empty response from AI")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) completeAnthropic(ctx context.Context, provider *config.AIProvider, req completion) (string, error) {
	model := strings.TrimSpace(provider.DefaultModel)
	if model == "" {
		model = "claude-haiku-4-5-20251001"
	}

	opts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(strings.TrimSpace(provider.APIKey)),
		anthropicoption.WithMaxRetries(0),
	}
	if endpoint := strings.TrimSpace(provider.Endpoint); endpoint != "" {
		opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(endpoint, "/")))
	}

	client := anthropicclient.NewClient(opts...)
	params := anthropicclient.MessageNewParams{
		Model:       anthropicclient.Model(model),
		MaxTokens:   req.MaxTokens,
		Temperature: anthropicclient.Float(req.Temperature),
		Messages: []anthropicclient.MessageParam{
			anthropicclient.NewUserMessage(anthropicclient.NewTextBlock(req.Prompt)),
		},
	}
	if strings.TrimSpace(req.System) != "" {
		params.System = []anthropicclient.TextBlockParam{{Text: req.System}}
	}

	msg, err := client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}

	var full strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropicclient.TextBlock); ok {
			full.WriteString(text.Text)
		}
	}
	if strings.TrimSpace(full.String()) == "" {
		return "", errors.New("empty response from AI")
	}
	return full.String(), nil
}

func (c *Client) completeOpenAICompatible(ctx context.Context, provider *config.AIProvider, req completion) (string, error) {
	endpoint := normalizeOpenAICompatibleEndpoint(provider.Endpoint)
	model := strings.TrimSpace(provider.DefaultModel)
	if model == "" {
		model = "deepseek-chat"
	}

	messages := make([]map[string]string, 0, 2)
	if strings.TrimSpace(req.System) != "" {
		messages = append(messages, map[string]string{"role": "system", "content": req.System})
	}
	messages = append(messages, map[string]string{"role": "user", "content": req.Prompt})

	body, _ := json.Marshal(map[string]interface{}{
		"model":       model,
		"messages":    messages,
		"max_tokens":  req.MaxTokens,
		"temperature": req.Temperature,
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+strings.TrimSpace(provider.APIKey))
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("openai-compatible error: %s", strings.TrimSpace(string(respBody)))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if result.Error != nil && strings.TrimSpace(result.Error.Message) != "" {
		return "", fmt.Errorf("openai-compatible error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("empty response from AI")
	}
	return result.Choices[0].Message.Content, nil
}

// unmarshalAIJSON decodes model output that may be wrapped in code
// fences or prose around the JSON body.
func unmarshalAIJSON(raw string, out interface{}) error {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if err := json.Unmarshal([]byte(cleaned), out); err == nil {
		return nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), out); err == nil {
			return nil
		}
	}

	return errors.New("invalid JSON response from AI")
}

func normalizeOpenAIBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return ""
	}
	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimRight(base, "/")
	}

	path := strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(path, "/v1") {
		path += "/v1"
	}
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}

func normalizeOpenAICompatibleEndpoint(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return "https://api.deepseek.com"
	}

	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimSuffix(strings.TrimRight(base, "/"), "/v1")
	}

	path := strings.TrimRight(parsed.Path, "/")
	path = strings.TrimSuffix(path, "/v1")
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}
