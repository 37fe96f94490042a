package analytics

import (
	"time"

	"github.com/google/uuid"
)

// PageContext holds the standard page fields merged into every page call.
type PageContext struct {
	Path     string `yaml:"path"`
	Referrer string `yaml:"referrer"`
	Search   string `yaml:"search"`
	Title    string `yaml:"title"`
	URL      string `yaml:"url"`
}

type message struct {
	messageID string
	timestamp time.Time
}

func newMessage() message {
	return message{
		messageID: uuid.NewString(),
		timestamp: time.Now(),
	}
}

// MessageID returns the unique id generated for the call.
func (m message) MessageID() string { return m.messageID }

// Timestamp returns when the call was made.
func (m message) Timestamp() time.Time { return m.timestamp }

// Identify is the payload of an identify call.
type Identify struct {
	message
	userID string
	traits map[string]any
}

// NewIdentify creates an identify payload.
func NewIdentify(userID string, traits map[string]any) *Identify {
	return &Identify{message: newMessage(), userID: userID, traits: orEmpty(traits)}
}

func (m *Identify) UserID() string { return m.userID }

// Traits returns only the traits passed with this call.
func (m *Identify) Traits() map[string]any { return m.traits }

// Track is the payload of a track call.
type Track struct {
	message
	event      string
	properties map[string]any
}

// NewTrack creates a track payload.
func NewTrack(event string, properties map[string]any) *Track {
	return &Track{message: newMessage(), event: event, properties: orEmpty(properties)}
}

func (m *Track) Event() string               { return m.event }
func (m *Track) Properties() map[string]any { return m.properties }

// Page is the payload of a page call.
type Page struct {
	message
	name       string
	properties map[string]any
}

// NewPage creates a page payload. Properties start from the standard page
// fields, custom properties override them, and a non-empty name is set
// last.
func NewPage(name string, properties map[string]any, page PageContext) *Page {
	merged := map[string]any{
		"path":     page.Path,
		"referrer": page.Referrer,
		"search":   page.Search,
		"title":    page.Title,
		"url":      page.URL,
	}
	for k, v := range properties {
		merged[k] = v
	}
	if name != "" {
		merged["name"] = name
	}
	return &Page{message: newMessage(), name: name, properties: merged}
}

func (m *Page) Name() string { return m.name }

// Properties returns the standard page fields merged with custom properties.
func (m *Page) Properties() map[string]any { return m.properties }

// Group is the payload of a group call.
type Group struct {
	message
	groupID    string
	properties map[string]any
}

// NewGroup creates a group payload.
func NewGroup(groupID string, traits map[string]any) *Group {
	return &Group{message: newMessage(), groupID: groupID, properties: orEmpty(traits)}
}

func (m *Group) GroupID() string            { return m.groupID }
func (m *Group) Properties() map[string]any { return m.properties }

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
