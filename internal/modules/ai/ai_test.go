package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meritlives/tools-core/internal/config"
)

func compatClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.AIConfig{
		TimeoutSeconds: 5,
		Providers: []config.AIProvider{
			{ID: "test", Type: "openai-compatible", APIKey: "sk-test", Endpoint: srv.URL, DefaultModel: "deepseek-chat", Enabled: true},
		},
	}
	return NewClient(cfg), srv
}

func chatCompletion(content string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return body
}

func TestUnmarshalAIJSON(t *testing.T) {
	var out struct {
		Summary string `json:"summary"`
	}

	require.NoError(t, unmarshalAIJSON(`{"summary":"plain"}`, &out))
	assert.Equal(t, "plain", out.Summary)

	require.NoError(t, unmarshalAIJSON("```json\n{\"summary\":\"fenced\"}\n```", &out))
	assert.Equal(t, "fenced", out.Summary)

	require.NoError(t, unmarshalAIJSON(`Here is the result: {"summary":"wrapped"} Hope it helps!`, &out))
	assert.Equal(t, "wrapped", out.Summary)

	assert.Error(t, unmarshalAIJSON("no json here", &out))
}

func TestGeneratePostsParsesProviderResponse(t *testing.T) {
	payload := `{"posts":[{"content":"Try FlowDesk today","engagement_score":85,"tone":"casual","hashtags":["#flowdesk"],"explanation":"strong hook"}],"insights":"lead with the benefit","recommendations":["post at 9am"]}`

	client, _ := compatClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Write(chatCompletion("```json\n" + payload + "\n```"))
	})

	svc := NewService(client, zap.NewNop())
	res := svc.GeneratePosts(context.Background(), GeneratePostsDTO{
		BrandName: "FlowDesk", Topic: "productivity", BrandVoice: "casual", Platform: "instagram",
	})

	assert.True(t, res.AIGenerated)
	require.Len(t, res.Variations, 1)
	assert.Equal(t, "Try FlowDesk today", res.Variations[0].Content)
	assert.Equal(t, 85, res.Variations[0].EngagementScore)
	assert.Equal(t, "lead with the benefit", res.Insights)
	assert.Equal(t, "instagram", res.Platform)
	assert.NotEmpty(t, res.GeneratedAt)
}

func TestGeneratePostsFallsBackOnServerError(t *testing.T) {
	client, _ := compatClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	})

	svc := NewService(client, zap.NewNop())
	res := svc.GeneratePosts(context.Background(), GeneratePostsDTO{
		Topic: "fitness coaching", BrandVoice: "professional", Platform: "instagram",
	})

	assert.False(t, res.AIGenerated)
	assert.Equal(t, "AI service temporarily unavailable. Using rule-based generation.", res.Insights)
	require.Len(t, res.Variations, 3)
	for _, v := range res.Variations {
		assert.NotEmpty(t, v.Content)
		assert.NotEmpty(t, v.Hashtags)
	}
}

func TestGeneratePostsWithoutProvider(t *testing.T) {
	svc := NewService(NewClient(config.AIConfig{}), zap.NewNop())
	res := svc.GeneratePosts(context.Background(), GeneratePostsDTO{
		Topic: "coffee", Platform: "twitter",
	})

	assert.False(t, res.AIGenerated)
	assert.Len(t, res.Variations, 3)
}

func TestTrendingHashtagsFallback(t *testing.T) {
	client, _ := compatClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatCompletion("sorry, I cannot help with that"))
	})

	svc := NewService(client, zap.NewNop())
	res := svc.TrendingHashtags(context.Background(), HashtagsDTO{Topic: "home workout", Platform: "instagram"})

	assert.True(t, res.Fallback)
	assert.Contains(t, res.Hashtags.Popular, "#homeworkout")
	assert.Contains(t, res.Hashtags.Niche, "#homeworkoutlovers")
	assert.Equal(t, 8, res.RecommendedCount)
	assert.Contains(t, res.PlatformSpecificTips, "instagram")
}

func TestAnalyzePostFallback(t *testing.T) {
	svc := NewService(NewClient(config.AIConfig{}), zap.NewNop())
	res := svc.AnalyzePost(context.Background(), AnalyzeDTO{Content: "Buy now", Platform: "facebook"})

	assert.True(t, res.Fallback)
	assert.Equal(t, 50, res.EngagementScore)
	assert.Equal(t, 60, res.ReadabilityScore)
	assert.Equal(t, "medium", res.PredictedMetrics.ViralityPotential)
}

func TestNormalizeOpenAICompatibleEndpoint(t *testing.T) {
	assert.Equal(t, "https://api.deepseek.com", normalizeOpenAICompatibleEndpoint(""))
	assert.Equal(t, "https://api.deepseek.com", normalizeOpenAICompatibleEndpoint("https://api.deepseek.com/v1"))
	assert.Equal(t, "http://localhost:8080", normalizeOpenAICompatibleEndpoint("http://localhost:8080/"))
}
