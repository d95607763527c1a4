package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityOps/internal/logging"
	"cityOps/models"
)

// fakeEndpoint serves chat completions whose assistant content is reply.
// Any other status is returned as an API error.
func fakeEndpoint(t *testing.T, status int, reply string, seen *map[string]any) *Client {
	t.Helper()
	logging.Silence()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if seen != nil {
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, seen)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 0,
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": reply},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL + "/", Model: "test-model"})
}

func TestNoKey_ReturnsPlaceholders(t *testing.T) {
	c := NewClient(Config{})
	assert.False(t, c.Enabled())
	assert.Equal(t, MissingKeyDescription, c.GeneratePropertyDescription(context.Background(), DescriptionInput{}))
	assert.Equal(t, Triage{Priority: models.MaintenancePriorityMedium, Analysis: MissingKeyAnalysis},
		c.AnalyzeMaintenanceRequest(context.Background(), "Leak", "Water everywhere"))
}

func TestGeneratePropertyDescription(t *testing.T) {
	var body map[string]any
	c := fakeEndpoint(t, http.StatusOK, "A bright loft.", &body)
	got := c.GeneratePropertyDescription(context.Background(), DescriptionInput{
		Features: "rooftop deck", PropertyType: "loft", Bedrooms: 2, Bathrooms: 1.5, Location: "SoMa",
	})
	assert.Equal(t, "A bright loft.", got)
	assert.Equal(t, "test-model", body["model"])
	msgs, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	content, _ := msgs[0].(map[string]any)["content"].(string)
	assert.Contains(t, content, "loft located in SoMa")
	assert.Contains(t, content, "2 bedrooms and 1.5 bathrooms")
	assert.Contains(t, content, "under 150 words")
}

func TestGeneratePropertyDescription_Fallbacks(t *testing.T) {
	empty := fakeEndpoint(t, http.StatusOK, "", nil)
	assert.Equal(t, EmptyDescription, empty.GeneratePropertyDescription(context.Background(), DescriptionInput{}))

	failing := fakeEndpoint(t, http.StatusInternalServerError, "", nil)
	assert.Equal(t, FailedDescription, failing.GeneratePropertyDescription(context.Background(), DescriptionInput{}))
}

func TestAnalyzeMaintenanceRequest(t *testing.T) {
	var body map[string]any
	c := fakeEndpoint(t, http.StatusOK, `{"priority":"HIGH","analysis":"Active leak."}`, &body)
	got := c.AnalyzeMaintenanceRequest(context.Background(), "Leak", "Ceiling drips")
	assert.Equal(t, Triage{Priority: models.MaintenancePriorityHigh, Analysis: "Active leak."}, got)
	rf, _ := body["response_format"].(map[string]any)
	assert.Equal(t, "json_object", rf["type"])
}

func TestAnalyzeMaintenanceRequest_ResponseShapes(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  Triage
	}{
		{"missing fields", `{}`, Triage{Priority: "MEDIUM", Analysis: UnavailableAnalysis}},
		{"empty body", ``, Triage{Priority: "MEDIUM", Analysis: UnavailableAnalysis}},
		{"empty strings", `{"priority":"","analysis":""}`, Triage{Priority: "MEDIUM", Analysis: UnavailableAnalysis}},
		{"unknown priority kept", `{"priority":"CRITICAL","analysis":"x"}`, Triage{Priority: "CRITICAL", Analysis: "x"}},
		{"non-string priority", `{"priority":3,"analysis":"x"}`, Triage{Priority: "3", Analysis: "x"}},
		{"not json", `definitely not json`, Triage{Priority: "MEDIUM", Analysis: FailedAnalysis}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := fakeEndpoint(t, http.StatusOK, tc.reply, nil)
			assert.Equal(t, tc.want, c.AnalyzeMaintenanceRequest(context.Background(), "t", "d"))
		})
	}

	failing := fakeEndpoint(t, http.StatusBadGateway, "", nil)
	assert.Equal(t, Triage{Priority: "MEDIUM", Analysis: FailedAnalysis},
		failing.AnalyzeMaintenanceRequest(context.Background(), "t", "d"))
}

func TestCancelledContext_DoesNotFailPastBoundary(t *testing.T) {
	c := fakeEndpoint(t, http.StatusOK, "ok", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, FailedDescription, c.GeneratePropertyDescription(ctx, DescriptionInput{}))
	assert.Equal(t, FailedAnalysis, c.AnalyzeMaintenanceRequest(ctx, "t", "d").Analysis)
}
