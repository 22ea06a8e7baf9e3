// Package sentitypes defines the shared value types for SentiBot's
// sentiment engine: utterance records, sentiment labels, mood-shift
// verdicts, and the conversation report consumed by the CLI layer.
package sentitypes

import "time"

// Label is the discrete sentiment classification derived from a compound
// score via fixed thresholds.
type Label string

// Sentiment labels.
const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
)

// Labels lists every label in stable display order.
func Labels() []Label {
	return []Label{LabelPositive, LabelNeutral, LabelNegative}
}

// MoodShift is the trend verdict comparing the average sentiment of the
// first half of a conversation against the second half.
type MoodShift string

// Mood-shift verdicts.
const (
	MoodImproving    MoodShift = "Improving"
	MoodDeclining    MoodShift = "Declining"
	MoodStable       MoodShift = "Stable"
	MoodInsufficient MoodShift = "Insufficient"
)

// Utterance is one user-submitted message together with its computed
// compound score and label. Records are immutable once created and are
// appended to the conversation history in arrival order.
type Utterance struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Compound  float64   `json:"compound"`
	Label     Label     `json:"label"`
	Timestamp time.Time `json:"timestamp"`
}

// LabelStat is the per-label slice of the sentiment distribution.
type LabelStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Report is a transient snapshot of the conversation analysis, recomputed
// fresh from the full history each time it is requested.
type Report struct {
	OverallLabel Label               `json:"overall_label"`
	MeanCompound float64             `json:"mean_compound"`
	MessageCount int                 `json:"message_count"`
	Distribution map[Label]LabelStat `json:"distribution"`
	MoodShift    MoodShift           `json:"mood_shift"`
	Utterances   []Utterance         `json:"utterances"`
}
