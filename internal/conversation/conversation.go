// Package conversation owns the message history for one chat session and
// computes aggregate sentiment statistics on demand: overall sentiment,
// per-label distribution, and a mood-shift trend comparing the two halves
// of the conversation.
package conversation

import (
	"math"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"sentibot/internal/sentiment"
	"sentibot/pkg/sentitypes"
)

// DefaultMoodShiftDelta is the minimum half-to-half mean difference that
// counts as an improving or declining trend.
const DefaultMoodShiftDelta = 0.2

// Conversation accumulates scored utterances for a single session and
// answers aggregate queries over them. It models exactly one ongoing
// conversation accessed by a single control flow; concurrent use is a
// precondition violation, not a supported mode. Instantiate one
// Conversation per session.
type Conversation struct {
	analyzer  *sentiment.Analyzer
	clock     clockwork.Clock
	moodDelta float64
	history   []sentitypes.Utterance
}

// New creates an empty Conversation scoring with analyzer and timestamping
// records from clock. moodDelta is the trend threshold for MoodShift.
func New(analyzer *sentiment.Analyzer, clock clockwork.Clock, moodDelta float64) *Conversation {
	return &Conversation{
		analyzer:  analyzer,
		clock:     clock,
		moodDelta: moodDelta,
	}
}

// Record scores text, appends the resulting utterance to the history, and
// returns it. History grows by exactly one record per call and existing
// records are never removed or reordered.
func (c *Conversation) Record(text string) sentitypes.Utterance {
	compound, label := c.analyzer.Score(text)

	u := sentitypes.Utterance{
		ID:        uuid.New().String(),
		Text:      text,
		Compound:  compound,
		Label:     label,
		Timestamp: c.clock.Now(),
	}
	c.history = append(c.history, u)
	return u
}

// MessageCount reports how many utterances have been recorded.
func (c *Conversation) MessageCount() int {
	return len(c.history)
}

// OverallSentiment returns the arithmetic mean of all recorded compound
// scores and the label that mean falls under. An empty history yields
// (Neutral, 0.0).
func (c *Conversation) OverallSentiment() (sentitypes.Label, float64) {
	if len(c.history) == 0 {
		return sentitypes.LabelNeutral, 0.0
	}
	mean := meanCompound(c.history)
	return c.analyzer.Classify(mean), mean
}

// Distribution returns per-label counts and percentages. Every label is
// present in the result, counts sum to MessageCount, and percentages are
// rounded to one decimal place. An empty history yields zero counts and
// 0.0 percentages.
func (c *Conversation) Distribution() map[sentitypes.Label]sentitypes.LabelStat {
	counts := make(map[sentitypes.Label]int, 3)
	for _, u := range c.history {
		counts[u.Label]++
	}

	dist := make(map[sentitypes.Label]sentitypes.LabelStat, 3)
	total := len(c.history)
	for _, label := range sentitypes.Labels() {
		stat := sentitypes.LabelStat{Count: counts[label]}
		if total > 0 {
			stat.Percentage = roundTo1(100 * float64(stat.Count) / float64(total))
		}
		dist[label] = stat
	}
	return dist
}

// MoodShift compares the mean compound score of the first half of the
// history against the second half. With n messages the first half is
// indices [0, n/2) (floor division); an odd middle message belongs to the
// second half. Fewer than two messages yields Insufficient. The verdict is
// recomputed from the full history on every call.
func (c *Conversation) MoodShift() sentitypes.MoodShift {
	n := len(c.history)
	if n < 2 {
		return sentitypes.MoodInsufficient
	}

	mid := n / 2
	delta := meanCompound(c.history[mid:]) - meanCompound(c.history[:mid])

	switch {
	case delta >= c.moodDelta:
		return sentitypes.MoodImproving
	case delta <= -c.moodDelta:
		return sentitypes.MoodDeclining
	default:
		return sentitypes.MoodStable
	}
}

// Report assembles the full conversation analysis as of this instant. The
// returned value is a fresh snapshot: it carries its own copy of the
// history and is never mutated by later recording.
func (c *Conversation) Report() sentitypes.Report {
	label, mean := c.OverallSentiment()

	utterances := make([]sentitypes.Utterance, len(c.history))
	copy(utterances, c.history)

	return sentitypes.Report{
		OverallLabel: label,
		MeanCompound: mean,
		MessageCount: len(c.history),
		Distribution: c.Distribution(),
		MoodShift:    c.MoodShift(),
		Utterances:   utterances,
	}
}

// Reset clears the history, starting a new conversation.
func (c *Conversation) Reset() {
	c.history = nil
}

func meanCompound(us []sentitypes.Utterance) float64 {
	if len(us) == 0 {
		return 0.0
	}
	var sum float64
	for _, u := range us {
		sum += u.Compound
	}
	return sum / float64(len(us))
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
