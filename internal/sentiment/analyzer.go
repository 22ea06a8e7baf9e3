// Package sentiment implements the rule-based sentiment scorer for SentiBot.
// It maps one text string to a compound valence score in [-1, 1] and a
// discrete label, using the VADER lexicon technique (word polarity combined
// with negation, intensifiers, and punctuation emphasis) rather than a
// trained model.
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"

	"sentibot/pkg/sentitypes"
)

// Default classification thresholds applied to the compound score.
const (
	DefaultPositiveThreshold = 0.05
	DefaultNegativeThreshold = -0.05
)

// Thresholds holds the compound-score cutoffs for label derivation.
// Positive must be > 0 and Negative < 0; scores between the two are Neutral.
type Thresholds struct {
	Positive float64
	Negative float64
}

// DefaultThresholds returns the standard VADER classification cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Positive: DefaultPositiveThreshold, Negative: DefaultNegativeThreshold}
}

// Analyzer scores individual messages. It is stateless after construction:
// scoring is a pure function of the input text, so one Analyzer can be
// shared across any number of logical conversations.
type Analyzer struct {
	vader      *govader.SentimentIntensityAnalyzer
	thresholds Thresholds
}

// New creates an Analyzer classifying with the given thresholds.
func New(th Thresholds) *Analyzer {
	return &Analyzer{
		vader:      govader.NewSentimentIntensityAnalyzer(),
		thresholds: th,
	}
}

// Score computes the compound valence of text and the label it falls under.
// It never fails: empty, whitespace-only, or otherwise unscorable input
// yields a compound of 0.0 and a Neutral label.
func (a *Analyzer) Score(text string) (float64, sentitypes.Label) {
	if strings.TrimSpace(text) == "" {
		return 0.0, sentitypes.LabelNeutral
	}

	compound := clamp(a.vader.PolarityScores(text).Compound, -1.0, 1.0)
	return compound, a.Classify(compound)
}

// Classify derives the label for a compound score. Re-deriving the label
// from the same score is idempotent.
func (a *Analyzer) Classify(compound float64) sentitypes.Label {
	switch {
	case compound >= a.thresholds.Positive:
		return sentitypes.LabelPositive
	case compound <= a.thresholds.Negative:
		return sentitypes.LabelNegative
	default:
		return sentitypes.LabelNeutral
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
