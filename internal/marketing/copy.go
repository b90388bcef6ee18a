// Package marketing produces short, deterministic developer-facing copy.
// Everything is template-driven; there are no external calls, so the output
// is stable for a given input.
package marketing

import (
	"fmt"
	"sort"
	"strings"
)

const DefaultProductName = "Titan-Core"

// Supported input values. Anything else is rejected by Generate.
var (
	UseCases  = []string{"changelog_snippet", "dev_portal_intro", "email_invite", "feature_blurb", "landing_headline"}
	Audiences = []string{"cto", "developer", "product"}
	Tones     = []string{"friendly", "neutral", "technical"}
)

// Request selects which copy to generate.
type Request struct {
	UseCase         string
	Audience        string
	Tone            string
	ProductName     string // empty means DefaultProductName
	IncludeVariants bool
}

// Copy is the generated result.
type Copy struct {
	Primary     string   `json:"primary"`
	Variants    []string `json:"variants"`
	UseCase     string   `json:"use_case"`
	Audience    string   `json:"audience"`
	Tone        string   `json:"tone"`
	ProductName string   `json:"product_name"`
}

// UnsupportedValueError reports an input outside the supported sets, with
// the valid options spelled out for the caller.
type UnsupportedValueError struct {
	Field     string
	Value     string
	Supported []string
}

func (e *UnsupportedValueError) Error() string {
	supported := append([]string(nil), e.Supported...)
	sort.Strings(supported)
	return fmt.Sprintf("Unsupported %s '%s'. Supported: %s.", e.Field, e.Value, strings.Join(supported, ", "))
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Generate renders copy for the request. Tone defaults to neutral when
// empty; unsupported use_case, audience or tone values return an
// UnsupportedValueError.
func Generate(req Request) (Copy, error) {
	if !contains(UseCases, req.UseCase) {
		return Copy{}, &UnsupportedValueError{Field: "use_case", Value: req.UseCase, Supported: UseCases}
	}
	if !contains(Audiences, req.Audience) {
		return Copy{}, &UnsupportedValueError{Field: "audience", Value: req.Audience, Supported: Audiences}
	}
	tone := req.Tone
	if tone == "" {
		tone = "neutral"
	}
	if !contains(Tones, tone) {
		return Copy{}, &UnsupportedValueError{Field: "tone", Value: req.Tone, Supported: Tones}
	}

	name := req.ProductName
	if name == "" {
		name = DefaultProductName
	}

	c := Copy{
		Primary:     primary(req.UseCase, name, req.Audience, tone),
		Variants:    []string{},
		UseCase:     req.UseCase,
		Audience:    req.Audience,
		Tone:        tone,
		ProductName: name,
	}
	if req.IncludeVariants {
		c.Variants = variants(req.UseCase, name)
	}
	return c, nil
}

func primary(useCase, name, audience, tone string) string {
	switch useCase {
	case "landing_headline":
		return landingHeadline(name, audience, tone)
	case "feature_blurb":
		return featureBlurb(name, tone)
	case "dev_portal_intro":
		return devPortalIntro(name, tone)
	case "changelog_snippet":
		return changelogSnippet(name)
	case "email_invite":
		return emailInvite(name, audience, tone)
	}
	return fmt.Sprintf("%s is a lightweight behavioural engine. Use it to track friction, hesitation and pace per session.", name)
}

func landingHeadline(name, audience, tone string) string {
	switch audience {
	case "developer":
		switch tone {
		case "technical":
			return fmt.Sprintf("%s: behavioural telemetry for real-time product decisions.", name)
		case "friendly":
			return fmt.Sprintf("%s: understand user behaviour without drowning in analytics.", name)
		default:
			return fmt.Sprintf("%s: a lightweight behavioural engine for modern apps.", name)
		}
	case "cto":
		return fmt.Sprintf("%s: a low-friction way to add behavioural intelligence to your stack.", name)
	case "product":
		return fmt.Sprintf("%s: see how users actually move through your product, in real time.", name)
	}
	return fmt.Sprintf("%s: lightweight behavioural intelligence for your product.", name)
}

func featureBlurb(name, tone string) string {
	base := fmt.Sprintf("%s tracks simple signals like friction, hesitation and pace per session, "+
		"then returns clean, low-noise metrics you can plug into experiments, onboarding flows "+
		"or internal dashboards.", name)
	switch tone {
	case "technical":
		return base + " The API is stateless on the client side, with a small set of " +
			"endpoints that are easy to wrap in any backend or workflow tool."
	case "friendly":
		return base + " You send a few numbers per event, and it gives you rolling summaries " +
			"that are easy for teams to talk about and act on."
	default:
		return base + " It's designed to be simple to adopt, without forcing you to rethink your stack."
	}
}

func devPortalIntro(name, tone string) string {
	if tone == "technical" {
		return fmt.Sprintf("%s is a small HTTP service with three core endpoints: start, event "+
			"and end. You POST a session_id and a few numeric signals, and it returns rolling "+
			"behavioural metrics you can feed into your own decision logic.", name)
	}
	return fmt.Sprintf("%s gives you a focused set of APIs so you can start capturing behavioural "+
		"signals in minutes, not weeks.", name)
}

func changelogSnippet(name string) string {
	return fmt.Sprintf("Added %s v1 as a lightweight behavioural engine. "+
		"It exposes /v1/start, /v1/event and /v1/end, and returns rolling averages for key signals "+
		"like friction, hesitation and pace.", name)
}

func emailInvite(name, audience, tone string) string {
	greeting := "Hi there,"
	switch audience {
	case "developer":
		greeting = "Hey,"
	case "cto":
		greeting = "Hi,"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", greeting)
	fmt.Fprintf(&b, "We've been working on %s, a small behavioural engine you can drop into an "+
		"existing product to capture simple signals like friction, hesitation and pace per session.\n\n", name)
	b.WriteString("It's intentionally low resolution: just enough signal to inform decisions, without adding " +
		"a heavy analytics layer.\n\n")

	if tone == "technical" {
		b.WriteString("The API surface is three main endpoints (start, event, end) and the responses are " +
			"designed to be easy to log, chart or feed into feature flags.\n\n")
	} else {
		b.WriteString("If you're curious, we can share a Postman collection and a short walkthrough showing " +
			"how teams plug it into onboarding and feature experiments.\n\n")
	}

	b.WriteString("If this sounds useful, reply and I'll send over the details.\n")
	b.WriteString("\nBest,\nRuss")
	return b.String()
}

func variants(useCase, name string) []string {
	switch useCase {
	case "landing_headline":
		return []string{
			fmt.Sprintf("Add behavioural intelligence to your product with %s.", name),
			fmt.Sprintf("%s helps you see where users slow down, hesitate and drop off.", name),
		}
	case "feature_blurb":
		return []string{
			"Capture a few numeric signals per event and get back rolling metrics you can plug into experiments.",
		}
	case "dev_portal_intro":
		return []string{
			fmt.Sprintf("%s focuses on a small, predictable API surface so you can integrate it quickly.", name),
		}
	case "changelog_snippet":
		return []string{
			"Introduced a dedicated behavioural engine service, keeping core product logic separate from telemetry.",
		}
	case "email_invite":
		return []string{
			"I can share a quick Postman collection if you'd like to see how it works in practice.",
		}
	}
	return []string{}
}
