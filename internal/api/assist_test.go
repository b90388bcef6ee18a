package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportAsk(t *testing.T) {
	h := newTestHandler(t)

	_, env := doJSON(t, h, http.MethodPost, "/v1/support/ask", map[string]any{
		"question": "how do I start a session?",
	})

	require.True(t, env.OK)
	require.NotNil(t, env.Event)
	assert.Equal(t, "support_answer", *env.Event)

	data := dataMap(t, env)
	assert.Equal(t, "start-session", data["topic_id"])
	assert.Contains(t, data, "example_request")
}

func TestSupportAskWithErrorMessage(t *testing.T) {
	h := newTestHandler(t)

	_, env := doJSON(t, h, http.MethodPost, "/v1/support/ask", map[string]any{
		"question":      "how do I end a session?",
		"error_message": "got Session not found back",
	})

	require.True(t, env.OK)
	data := dataMap(t, env)
	require.Contains(t, data, "error_explanation")
}

func TestSupportAskFallback(t *testing.T) {
	h := newTestHandler(t)

	_, env := doJSON(t, h, http.MethodPost, "/v1/support/ask", map[string]any{
		"question": "tell me about quantum entanglement",
	})

	require.True(t, env.OK)
	data := dataMap(t, env)
	assert.NotContains(t, data, "topic_id")
	assert.Contains(t, data["answer"], "couldn't match")
}

func TestSupportAskEmptyQuestion(t *testing.T) {
	h := newTestHandler(t)

	_, env := doJSON(t, h, http.MethodPost, "/v1/support/ask", map[string]any{})
	assert.False(t, env.OK)
	require.NotNil(t, env.Msg)
	assert.Equal(t, "Invalid question: must be a non-empty string.", *env.Msg)
}

func TestSupportAskWithoutExamples(t *testing.T) {
	h := newTestHandler(t)

	_, env := doJSON(t, h, http.MethodPost, "/v1/support/ask", map[string]any{
		"question":         "how do I record friction signals?",
		"include_examples": false,
	})

	require.True(t, env.OK)
	data := dataMap(t, env)
	assert.NotContains(t, data, "example_request")
}

func TestMarketingGenerate(t *testing.T) {
	h := newTestHandler(t)

	_, env := doJSON(t, h, http.MethodPost, "/v1/marketing/generate", map[string]any{
		"use_case": "landing_headline",
		"audience": "developer",
		"tone":     "technical",
	})

	require.True(t, env.OK)
	require.NotNil(t, env.Event)
	assert.Equal(t, "marketing_copy", *env.Event)

	data := dataMap(t, env)
	assert.Equal(t, "Titan-Core: behavioural telemetry for real-time product decisions.", data["primary"])
	assert.Len(t, data["variants"], 2)
}

func TestMarketingGenerateUsesConfiguredProductName(t *testing.T) {
	h := newTestHandler(t)

	// No product_name in the request: falls back to config default.
	_, env := doJSON(t, h, http.MethodPost, "/v1/marketing/generate", map[string]any{
		"use_case": "changelog_snippet",
		"audience": "developer",
	})

	require.True(t, env.OK)
	assert.Equal(t, "Titan-Core", dataMap(t, env)["product_name"])
}

func TestMarketingGenerateUnsupported(t *testing.T) {
	h := newTestHandler(t)

	_, env := doJSON(t, h, http.MethodPost, "/v1/marketing/generate", map[string]any{
		"use_case": "skywriting",
		"audience": "developer",
	})

	assert.False(t, env.OK)
	require.NotNil(t, env.Event)
	assert.Equal(t, "marketing_error", *env.Event)
	require.NotNil(t, env.Msg)
	assert.Contains(t, *env.Msg, "Unsupported use_case 'skywriting'")
}

func TestMarketingGenerateVariantsToggle(t *testing.T) {
	h := newTestHandler(t)

	_, env := doJSON(t, h, http.MethodPost, "/v1/marketing/generate", map[string]any{
		"use_case":         "landing_headline",
		"audience":         "developer",
		"include_variants": false,
	})

	require.True(t, env.OK)
	variants, ok := dataMap(t, env)["variants"].([]any)
	require.True(t, ok, "variants should be a JSON array, not null")
	assert.Empty(t, variants)
}
