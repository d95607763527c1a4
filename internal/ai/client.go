// Package ai wraps the generative text endpoint used by the property portal.
// Every call degrades to a fixed placeholder instead of returning an error.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/sirupsen/logrus"

	"cityOps/internal/logging"
	"cityOps/models"
)

const (
	MissingKeyDescription = "API Key missing. Please set environment variable."
	EmptyDescription      = "Could not generate description."
	FailedDescription     = "Error generating description. Please try again."

	MissingKeyAnalysis  = "API Key missing."
	UnavailableAnalysis = "Analysis unavailable."
	FailedAnalysis      = "AI analysis failed."
)

// Config selects the OpenAI-compatible endpoint. An empty APIKey disables calls.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client is safe for concurrent use.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient builds the client. Extra options are appended after the
// defaults, which tests use to swap the HTTP client.
func NewClient(cfg Config, opts ...option.RequestOption) *Client {
	if cfg.APIKey == "" {
		return &Client{client: nil, model: cfg.Model}
	}
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		base = append(base, option.WithBaseURL(cfg.BaseURL))
	}
	c := openai.NewClient(append(base, opts...)...)
	return &Client{client: &c, model: cfg.Model}
}

// Enabled reports whether a credential is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// DescriptionInput describes the listing to write copy for.
type DescriptionInput struct {
	Features     string
	PropertyType string
	Bedrooms     int
	Bathrooms    float64
	Location     string
}

// Triage is the suggested priority for a maintenance request. Priority is
// whatever the model returned and may fall outside the known levels.
type Triage struct {
	Priority models.MaintenancePriority `json:"priority"`
	Analysis string                     `json:"analysis"`
}

// GeneratePropertyDescription asks for a short listing description.
func (c *Client) GeneratePropertyDescription(ctx context.Context, in DescriptionInput) string {
	if !c.Enabled() {
		return MissingKeyDescription
	}
	prompt := fmt.Sprintf(`Write a compelling, professional rental listing description for a %s located in %s.
It has %d bedrooms and %s bathrooms.
Key features include: %s.
Keep it under 150 words and use persuasive language suitable for a property listing.`,
		in.PropertyType, in.Location, in.Bedrooms, formatBaths(in.Bathrooms), in.Features)

	text, err := c.complete(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
	})
	if err != nil {
		logging.Logger.WithError(err).Warn("Property description generation failed")
		return FailedDescription
	}
	if strings.TrimSpace(text) == "" {
		return EmptyDescription
	}
	return text
}

// AnalyzeMaintenanceRequest asks the model to rate a request.
func (c *Client) AnalyzeMaintenanceRequest(ctx context.Context, title, description string) Triage {
	if !c.Enabled() {
		return Triage{Priority: models.MaintenancePriorityMedium, Analysis: MissingKeyAnalysis}
	}
	prompt := fmt.Sprintf(`Analyze the following maintenance request from a tenant:
Title: %s
Description: %s

Determine the priority level (LOW, MEDIUM, HIGH, or EMERGENCY) and provide a 1-sentence reasoning.
Return the response in JSON format with keys "priority" and "analysis".`, title, description)

	text, err := c.complete(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	failed := Triage{Priority: models.MaintenancePriorityMedium, Analysis: FailedAnalysis}
	if err != nil {
		logging.Logger.WithError(err).Warn("Maintenance triage failed")
		return failed
	}
	if strings.TrimSpace(text) == "" {
		text = "{}"
	}
	var raw struct {
		Priority any `json:"priority"`
		Analysis any `json:"analysis"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		logging.Logger.WithFields(logrus.Fields{"error": err, "body": truncate(text, 200)}).Warn("Maintenance triage returned invalid JSON")
		return failed
	}
	out := Triage{
		Priority: models.MaintenancePriority(stringOr(raw.Priority, string(models.MaintenancePriorityMedium))),
		Analysis: stringOr(raw.Analysis, UnavailableAnalysis),
	}
	return out
}

func (c *Client) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// stringOr returns v when it is a non-empty string and def otherwise.
// Non-string JSON values are formatted with %v.
func stringOr(v any, def string) string {
	switch x := v.(type) {
	case nil:
		return def
	case string:
		if x == "" {
			return def
		}
		return x
	case bool:
		if !x {
			return def
		}
	case float64:
		if x == 0 {
			return def
		}
	}
	return fmt.Sprintf("%v", v)
}

func formatBaths(b float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", b), "0"), ".")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
