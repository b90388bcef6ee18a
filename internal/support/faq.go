// Package support answers usage questions from a small internal knowledge
// base. Matching is deterministic keyword scoring; there are no external
// calls.
package support

import "strings"

// FAQItem is one entry in the built-in knowledge base.
type FAQItem struct {
	ID                  string         `json:"id"`
	Title               string         `json:"title"`
	Tags                []string       `json:"tags"`
	Endpoint            string         `json:"endpoint,omitempty"`
	Answer              string         `json:"answer"`
	ExampleRequest      map[string]any `json:"example_request,omitempty"`
	ExampleResponseHint string         `json:"example_response_hint,omitempty"`
}

var faqItems = []FAQItem{
	{
		ID:       "start-session",
		Title:    "How do I start a Titan-X session?",
		Tags:     []string{"start", "session", "begin", "initialise", "init"},
		Endpoint: "/v1/start",
		Answer: "To start a Titan-X Core session, send a POST request to /v1/start with " +
			"a JSON body containing at least a non-empty 'session_id'. " +
			"You can also pass an optional 'user_id' and 'metadata' dictionary.",
		ExampleRequest: map[string]any{
			"method": "POST",
			"url":    "/v1/start",
			"body": map[string]any{
				"session_id": "demo-session-1",
				"user_id":    "user-123",
				"metadata":   map[string]any{"source": "docs-example"},
			},
		},
		ExampleResponseHint: "Look for ok=true and event='session_started'.",
	},
	{
		ID:       "record-event",
		Title:    "How do I record behavioural events?",
		Tags:     []string{"event", "record", "metrics", "signals", "friction", "hesitation", "pace"},
		Endpoint: "/v1/event",
		Answer: "Use POST /v1/event to record behavioural signals for an existing session. " +
			"You must provide 'session_id', 'event_type', and 'timestamp'. " +
			"You can optionally include 'friction', 'hesitation', and 'pace' scores " +
			"plus a 'context' object (page, element, extra). " +
			"Titan-Core will update the rolling averages for that session.",
		ExampleRequest: map[string]any{
			"method": "POST",
			"url":    "/v1/event",
			"body": map[string]any{
				"session_id": "demo-session-1",
				"event_type": "focus_shift",
				"timestamp":  1710000000.0,
				"friction":   0.31,
				"hesitation": 0.45,
				"pace":       0.82,
				"context": map[string]any{
					"page":    "dashboard",
					"element": "hero-cta",
					"extra":   map[string]any{"notes": "first click"},
				},
			},
		},
		ExampleResponseHint: "Data will contain 'events_count', 'average_friction', " +
			"'average_hesitation', and 'average_pace'.",
	},
	{
		ID:       "end-session",
		Title:    "How do I end a session and get a summary?",
		Tags:     []string{"end", "finish", "close", "summary"},
		Endpoint: "/v1/end",
		Answer: "To close a session and optionally retrieve summary metrics, " +
			"call POST /v1/end with 'session_id' and, optionally, " +
			"'include_summary' (default is true). " +
			"If the session exists, Titan-Core will return final averages for " +
			"friction, hesitation, and pace.",
		ExampleRequest: map[string]any{
			"method": "POST",
			"url":    "/v1/end",
			"body": map[string]any{
				"session_id":      "demo-session-1",
				"include_summary": true,
			},
		},
		ExampleResponseHint: "If include_summary=true, data.summary will mirror the rolling metrics " +
			"you saw from /v1/event.",
	},
	{
		ID:       "health-status",
		Title:    "What are /health and /status for?",
		Tags:     []string{"health", "status", "ping", "uptime"},
		Endpoint: "/health",
		Answer: "GET /health is a lightweight endpoint for uptime checks. " +
			"Use it from your monitoring to confirm Titan-Core is reachable. " +
			"GET /status returns basic service metadata such as service name " +
			"and version, which is useful when debugging deployments.",
		ExampleRequest: map[string]any{
			"method": "GET",
			"url":    "/health",
		},
		ExampleResponseHint: "Expect ok=true if the service is running.",
	},
}

// Items returns the full knowledge base.
func Items() []FAQItem {
	return faqItems
}

func normalize(text string) []string {
	replaced := strings.NewReplacer("/", " ", "_", " ").Replace(strings.ToLower(text))
	return strings.Fields(replaced)
}

// score rates how well item answers question. Tag hits weigh 2, an exact
// endpoint hint weighs 4, title word overlap weighs 1.
func score(question string, item FAQItem, endpoint string) int {
	s := 0
	qTokens := make(map[string]bool)
	for _, tok := range normalize(question) {
		qTokens[tok] = true
	}

	for _, tag := range item.Tags {
		if qTokens[tag] {
			s += 2
		}
	}

	if endpoint != "" && item.Endpoint != "" && strings.TrimSpace(endpoint) == item.Endpoint {
		s += 4
	}

	for _, tok := range normalize(item.Title) {
		if qTokens[tok] {
			s++
		}
	}

	return s
}

// BestMatch returns the highest-scoring FAQ item for the question, or nil
// when nothing clears the minimum score and the caller should fall back to
// generic help.
func BestMatch(question, endpoint string) *FAQItem {
	var best *FAQItem
	bestScore := 0

	for i := range faqItems {
		if s := score(question, faqItems[i], endpoint); s > bestScore {
			best = &faqItems[i]
			bestScore = s
		}
	}

	if bestScore < 2 {
		return nil
	}
	return best
}
