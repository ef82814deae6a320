package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "plus and spaces", raw: "+966 51 234 5678", want: "966512345678", wantOK: true},
		{name: "local leading zero", raw: "0512345678", want: "966512345678", wantOK: true},
		{name: "bare nine digits", raw: "512345678", want: "966512345678", wantOK: true},
		{name: "already canonical", raw: "966512345678", want: "966512345678", wantOK: true},
		{name: "dashes and parens", raw: "(051) 234-5678", want: "966512345678", wantOK: true},
		{name: "no digits", raw: "call me", want: "", wantOK: false},
		{name: "empty", raw: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := NormalizePhone(tt.raw, DefaultCountryCode)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMessageRender(t *testing.T) {
	t.Parallel()

	m := Message{
		Title:    "3BR in Al Malqa",
		District: "Al Malqa",
		Price:    "7500",
		Period:   "monthly",
		URL:      "https://example.com/42",
	}

	got := m.Render("Interested in {title} ({district}), {price} {period}: {url}")
	assert.Equal(t, "Interested in 3BR in Al Malqa (Al Malqa), 7500 monthly: https://example.com/42", got)
}

func TestMessageRender_DefaultTemplate(t *testing.T) {
	t.Parallel()

	got := Message{Title: "Studio", District: "Hittin", Price: "4000", Period: "monthly"}.Render("")
	assert.Contains(t, got, "Studio")
	assert.Contains(t, got, "Hittin")
	assert.NotContains(t, got, "{title}", "all placeholders substituted")
}

func TestLink_Encoding(t *testing.T) {
	t.Parallel()

	link := Link("966512345678", "Hello, I'm interested")

	assert.True(t, len(link) > 0)
	assert.Contains(t, link, "https://wa.me/966512345678?text=")
	assert.Contains(t, link, "Hello%2C+I%27m+interested", "spaces become '+', punctuation percent-encoded")
}

func TestBuilderBuildLink(t *testing.T) {
	t.Parallel()

	b := Builder{}
	link, ok := b.BuildLink("05 1234 5678", Message{Title: "Studio"})
	require.True(t, ok)
	assert.Contains(t, link, "https://wa.me/966512345678?text=")

	_, ok = b.BuildLink("n/a", Message{})
	assert.False(t, ok, "no digits means no contact action")
}

func TestBuilderBuildLink_CustomCountryCode(t *testing.T) {
	t.Parallel()

	b := Builder{CountryCode: "971", Template: "hi {title}"}
	link, ok := b.BuildLink("0512345678", Message{Title: "Loft"})
	require.True(t, ok)
	assert.Contains(t, link, "https://wa.me/971512345678?text=hi+Loft")
}
