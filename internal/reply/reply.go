// Package reply selects a canned response for a scored user message.
// Selection is a keyed lookup: topical keyword checks first (mirroring a
// support-style conversation flow), then a random pick from the template
// set for the message's sentiment label. The selector is fully decoupled
// from scoring and aggregation; it consumes a label and returns a string.
package reply

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v3"

	"sentibot/pkg/sentitypes"
)

//go:embed templates.yaml
var templatesData []byte

// templateSet holds the canned reply pools parsed from the embedded YAML.
type templateSet struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
	Neutral  []string `yaml:"neutral"`
	Greeting []string `yaml:"greeting"`
	Farewell []string `yaml:"farewell"`
}

// Keyword groups for topical overrides, checked before the label lookup.
var (
	greetingWords  = []string{"hello", "hi", "hey", "greetings"}
	farewellWords  = []string{"bye", "goodbye", "farewell", "see you"}
	troubleWords   = []string{"problem", "issue", "bug", "error", "broken"}
	pricingWords   = []string{"price", "cost", "expensive", "cheap"}
	gratitudeWords = []string{"thank", "thanks", "appreciate"}
)

const (
	troubleReply        = "I'm sorry you're experiencing technical difficulties. Can you provide more details so I can help resolve this?"
	pricingConcernReply = "I understand pricing is a concern. Let me see what options might work better for your budget."
	pricingNeutralReply = "I'm happy to discuss pricing options that fit your needs."
	gratitudeReply      = "You're very welcome! Is there anything else I can help you with?"
)

// Selector picks replies from the embedded template sets. The random source
// is injected so tests can pin selection.
type Selector struct {
	templates templateSet
	rng       *rand.Rand
}

// NewSelector parses the embedded templates and returns a Selector drawing
// from rng. It fails only if the embedded template data is malformed.
func NewSelector(rng *rand.Rand) (*Selector, error) {
	var ts templateSet
	if err := yaml.Unmarshal(templatesData, &ts); err != nil {
		return nil, fmt.Errorf("parsing reply templates: %w", err)
	}
	if len(ts.Positive) == 0 || len(ts.Negative) == 0 || len(ts.Neutral) == 0 ||
		len(ts.Greeting) == 0 || len(ts.Farewell) == 0 {
		return nil, fmt.Errorf("reply templates incomplete: every set needs at least one entry")
	}
	return &Selector{templates: ts, rng: rng}, nil
}

// Select returns a reply for a message classified under label. Topical
// keyword overrides take priority; otherwise the reply is drawn at random
// from the label's template set.
func (s *Selector) Select(message string, label sentitypes.Label) string {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, greetingWords):
		return s.pick(s.templates.Greeting)
	case containsAny(lower, farewellWords):
		return s.pick(s.templates.Farewell)
	case containsAny(lower, troubleWords):
		return troubleReply
	case containsAny(lower, pricingWords):
		if label == sentitypes.LabelNegative {
			return pricingConcernReply
		}
		return pricingNeutralReply
	case containsAny(lower, gratitudeWords):
		return gratitudeReply
	}

	return s.pick(s.forLabel(label))
}

// Greeting returns a conversation-opening line.
func (s *Selector) Greeting() string {
	return s.pick(s.templates.Greeting)
}

// Farewell returns a conversation-closing line.
func (s *Selector) Farewell() string {
	return s.pick(s.templates.Farewell)
}

func (s *Selector) forLabel(label sentitypes.Label) []string {
	switch label {
	case sentitypes.LabelPositive:
		return s.templates.Positive
	case sentitypes.LabelNegative:
		return s.templates.Negative
	default:
		return s.templates.Neutral
	}
}

func (s *Selector) pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
