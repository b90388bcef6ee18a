package support

import "strings"

// ErrorExplanation is a friendly reading of an error message the caller
// pasted in, plus concrete follow-up hints.
type ErrorExplanation struct {
	Explanation string   `json:"explanation"`
	Hints       []string `json:"hints"`
}

// ExplainError maps common HTTP error text onto explanations. Later matches
// override earlier ones, mirroring how ambiguous messages are resolved:
// the most specific status code wins.
func ExplainError(message string) ErrorExplanation {
	text := strings.ToLower(message)
	explanation := "General error. Check your request body and headers."
	hints := []string{}

	if strings.Contains(text, "422") || strings.Contains(text, "unprocessable entity") {
		explanation = "HTTP 422 Unprocessable Entity. " +
			"This usually means your JSON body does not match the schema " +
			"expected by the endpoint (missing fields, wrong types, etc.)."
		hints = append(hints, "Verify all required fields are present and have the right types.")
	}

	if strings.Contains(text, "400") {
		explanation = "HTTP 400 Bad Request. " +
			"The server could not understand your request. " +
			"Check JSON formatting and any query parameters."
	}

	if strings.Contains(text, "401") || strings.Contains(text, "unauthorized") {
		explanation = "HTTP 401 Unauthorized. " +
			"This typically indicates missing or invalid authentication. " +
			"Titan-Core v1 does not require auth by default, so this may come " +
			"from your own gateway or proxy."
	}

	if strings.Contains(text, "session") && strings.Contains(text, "not found") {
		hints = append(hints,
			"Make sure you call /v1/start before sending /v1/event or /v1/end for a given session_id.")
	}

	return ErrorExplanation{Explanation: explanation, Hints: hints}
}

// Answer is the payload returned by the support endpoint.
type Answer struct {
	Answer              string            `json:"answer"`
	TopicID             string            `json:"topic_id,omitempty"`
	Endpoint            string            `json:"endpoint,omitempty"`
	ExampleRequest      map[string]any    `json:"example_request,omitempty"`
	ExampleResponseHint string            `json:"example_response_hint,omitempty"`
	ErrorExplanation    *ErrorExplanation `json:"error_explanation,omitempty"`
	SuggestedNextAction string            `json:"suggested_next_action,omitempty"`
}

// Ask resolves a free-form question against the knowledge base and
// optionally explains an error message.
func Ask(question, endpoint, errorMessage string, includeExamples bool) Answer {
	item := BestMatch(question, endpoint)

	var ans Answer
	if item != nil {
		ans.Answer = item.Answer
		ans.TopicID = item.ID
		ans.Endpoint = item.Endpoint
		ans.SuggestedNextAction = "Try the example request against your running Titan-Core instance."
		if includeExamples {
			ans.ExampleRequest = item.ExampleRequest
		}
		ans.ExampleResponseHint = item.ExampleResponseHint
	} else {
		ans.Answer = "I couldn't match your question to a specific topic. " +
			"Make sure you include which endpoint you're using (e.g. /v1/start, /v1/event, /v1/end) " +
			"and what you're trying to achieve."
		ans.Endpoint = endpoint
		ans.SuggestedNextAction = "Rephrase your question including the endpoint and whether you're starting, " +
			"recording, or ending a session."
	}

	if errorMessage != "" {
		exp := ExplainError(errorMessage)
		ans.ErrorExplanation = &exp
	}

	return ans
}
