package support

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestMatchByTags(t *testing.T) {
	item := BestMatch("how do I record friction and pace signals?", "")
	require.NotNil(t, item)
	assert.Equal(t, "record-event", item.ID)
}

func TestBestMatchByEndpointHint(t *testing.T) {
	// The question alone is too vague; the endpoint hint decides.
	item := BestMatch("what does this endpoint do? session", "/v1/end")
	require.NotNil(t, item)
	assert.Equal(t, "end-session", item.ID)
}

func TestBestMatchBelowThreshold(t *testing.T) {
	assert.Nil(t, BestMatch("what is the weather today", ""))
}

func TestBestMatchNormalizesSeparators(t *testing.T) {
	// Slash and underscore both split into tokens.
	item := BestMatch("how to use /v1/start to init a session_id", "")
	require.NotNil(t, item)
	assert.Equal(t, "start-session", item.ID)
}

func TestExplainError422(t *testing.T) {
	exp := ExplainError("got a 422 Unprocessable Entity back")
	assert.Contains(t, exp.Explanation, "422")
	require.Len(t, exp.Hints, 1)
}

func TestExplainErrorSessionNotFound(t *testing.T) {
	exp := ExplainError("Session not found.")
	require.Len(t, exp.Hints, 1)
	assert.Contains(t, exp.Hints[0], "/v1/start")
}

func TestExplainErrorGeneric(t *testing.T) {
	exp := ExplainError("something exploded")
	assert.Equal(t, "General error. Check your request body and headers.", exp.Explanation)
	assert.Empty(t, exp.Hints)
}

func TestAskWithMatch(t *testing.T) {
	ans := Ask("how do I start a session?", "", "", true)
	assert.Equal(t, "start-session", ans.TopicID)
	assert.NotNil(t, ans.ExampleRequest)
	assert.NotEmpty(t, ans.SuggestedNextAction)
}

func TestAskWithoutExamples(t *testing.T) {
	ans := Ask("how do I start a session?", "", "", false)
	assert.Equal(t, "start-session", ans.TopicID)
	assert.Nil(t, ans.ExampleRequest)
	// The response hint is kept even when example bodies are suppressed.
	assert.NotEmpty(t, ans.ExampleResponseHint)
}

func TestAskFallback(t *testing.T) {
	ans := Ask("completely unrelated question", "/v1/custom", "", true)
	assert.Empty(t, ans.TopicID)
	assert.Equal(t, "/v1/custom", ans.Endpoint)
	assert.Contains(t, ans.Answer, "couldn't match")
}

func TestAskWithErrorMessage(t *testing.T) {
	ans := Ask("how do I end a session?", "", "session not found", true)
	require.NotNil(t, ans.ErrorExplanation)
	assert.NotEmpty(t, ans.ErrorExplanation.Hints)
}
