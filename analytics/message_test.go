package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testPage = PageContext{
	Path:     "/pricing",
	Referrer: "https://example.com/",
	Search:   "?ref=nav",
	Title:    "Pricing",
	URL:      "https://example.com/pricing?ref=nav",
}

func TestNewPage_MergesStandardFields(t *testing.T) {
	msg := NewPage("Pricing", map[string]any{"customProperty": "Example"}, testPage)

	assert.Equal(t, "Pricing", msg.Name())
	assert.Equal(t, map[string]any{
		"name":           "Pricing",
		"path":           "/pricing",
		"referrer":       "https://example.com/",
		"search":         "?ref=nav",
		"title":          "Pricing",
		"url":            "https://example.com/pricing?ref=nav",
		"customProperty": "Example",
	}, msg.Properties())
}

func TestNewPage_CustomPropertiesOverrideDefaults(t *testing.T) {
	msg := NewPage("", map[string]any{"title": "Custom"}, testPage)

	assert.Equal(t, "Custom", msg.Properties()["title"])
	assert.NotContains(t, msg.Properties(), "name")
}

func TestMessages_EmptyProperties(t *testing.T) {
	assert.Equal(t, map[string]any{}, NewTrack("event", nil).Properties())
	assert.Equal(t, map[string]any{}, NewGroup("group", nil).Properties())
	assert.Equal(t, map[string]any{}, NewIdentify("id", nil).Traits())
}

func TestMessages_HaveUniqueIDs(t *testing.T) {
	a := NewTrack("event", nil)
	b := NewTrack("event", nil)

	assert.NotEmpty(t, a.MessageID())
	assert.NotEqual(t, a.MessageID(), b.MessageID())
	assert.False(t, a.Timestamp().IsZero())
}
