package marketing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLandingHeadline(t *testing.T) {
	tests := []struct {
		name     string
		audience string
		tone     string
		want     string
	}{
		{
			name:     "developer technical",
			audience: "developer",
			tone:     "technical",
			want:     "Titan-Core: behavioural telemetry for real-time product decisions.",
		},
		{
			name:     "developer friendly",
			audience: "developer",
			tone:     "friendly",
			want:     "Titan-Core: understand user behaviour without drowning in analytics.",
		},
		{
			name:     "developer neutral",
			audience: "developer",
			tone:     "neutral",
			want:     "Titan-Core: a lightweight behavioural engine for modern apps.",
		},
		{
			name:     "cto",
			audience: "cto",
			tone:     "neutral",
			want:     "Titan-Core: a low-friction way to add behavioural intelligence to your stack.",
		},
		{
			name:     "product",
			audience: "product",
			tone:     "neutral",
			want:     "Titan-Core: see how users actually move through your product, in real time.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Generate(Request{UseCase: "landing_headline", Audience: tt.audience, Tone: tt.tone})
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Primary)
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	req := Request{UseCase: "feature_blurb", Audience: "developer", Tone: "friendly", IncludeVariants: true}
	a, err := Generate(req)
	require.NoError(t, err)
	b, err := Generate(req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateProductNameOverride(t *testing.T) {
	c, err := Generate(Request{UseCase: "changelog_snippet", Audience: "developer", ProductName: "PulseKit"})
	require.NoError(t, err)
	assert.Contains(t, c.Primary, "PulseKit")
	assert.Equal(t, "PulseKit", c.ProductName)
}

func TestGenerateDefaultsToneAndName(t *testing.T) {
	c, err := Generate(Request{UseCase: "dev_portal_intro", Audience: "product"})
	require.NoError(t, err)
	assert.Equal(t, "neutral", c.Tone)
	assert.Equal(t, DefaultProductName, c.ProductName)
}

func TestGenerateVariantsToggle(t *testing.T) {
	with, err := Generate(Request{UseCase: "landing_headline", Audience: "developer", IncludeVariants: true})
	require.NoError(t, err)
	assert.Len(t, with.Variants, 2)

	without, err := Generate(Request{UseCase: "landing_headline", Audience: "developer"})
	require.NoError(t, err)
	assert.Empty(t, without.Variants)
	assert.NotNil(t, without.Variants, "variants should marshal as [], not null")
}

func TestGenerateEmailInviteGreetings(t *testing.T) {
	dev, err := Generate(Request{UseCase: "email_invite", Audience: "developer"})
	require.NoError(t, err)
	assert.Contains(t, dev.Primary, "Hey,")

	cto, err := Generate(Request{UseCase: "email_invite", Audience: "cto"})
	require.NoError(t, err)
	assert.Contains(t, cto.Primary, "Hi,")

	product, err := Generate(Request{UseCase: "email_invite", Audience: "product"})
	require.NoError(t, err)
	assert.Contains(t, product.Primary, "Hi there,")
}

func TestGenerateUnsupportedValues(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "use case",
			req:  Request{UseCase: "tweet", Audience: "developer"},
			want: "Unsupported use_case 'tweet'. Supported: changelog_snippet, dev_portal_intro, email_invite, feature_blurb, landing_headline.",
		},
		{
			name: "audience",
			req:  Request{UseCase: "feature_blurb", Audience: "investor"},
			want: "Unsupported audience 'investor'. Supported: cto, developer, product.",
		},
		{
			name: "tone",
			req:  Request{UseCase: "feature_blurb", Audience: "developer", Tone: "sarcastic"},
			want: "Unsupported tone 'sarcastic'. Supported: friendly, neutral, technical.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())

			var uve *UnsupportedValueError
			assert.ErrorAs(t, err, &uve)
		})
	}
}
