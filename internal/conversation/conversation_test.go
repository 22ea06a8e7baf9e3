package conversation

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentibot/internal/sentiment"
	"sentibot/pkg/sentitypes"
)

func newTestConversation() *Conversation {
	analyzer := sentiment.New(sentiment.DefaultThresholds())
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC))
	return New(analyzer, clock, DefaultMoodShiftDelta)
}

// seedScores appends synthetic utterances with exact compound scores,
// bypassing the scorer, so aggregate math can be verified precisely.
func seedScores(c *Conversation, scores ...float64) {
	for i, score := range scores {
		c.history = append(c.history, sentitypes.Utterance{
			ID:        uuid.New().String(),
			Text:      fmt.Sprintf("message %d", i+1),
			Compound:  score,
			Label:     c.analyzer.Classify(score),
			Timestamp: c.clock.Now(),
		})
	}
}

func TestConversation_EmptyHistory(t *testing.T) {
	conv := newTestConversation()

	assert.Equal(t, 0, conv.MessageCount())

	label, compound := conv.OverallSentiment()
	assert.Equal(t, sentitypes.LabelNeutral, label)
	assert.Equal(t, 0.0, compound)

	assert.Equal(t, sentitypes.MoodInsufficient, conv.MoodShift())

	dist := conv.Distribution()
	require.Len(t, dist, 3)
	for _, stat := range dist {
		assert.Equal(t, 0, stat.Count)
		assert.Equal(t, 0.0, stat.Percentage)
	}
}

func TestConversation_Record_AppendsInOrder(t *testing.T) {
	conv := newTestConversation()

	first := conv.Record("I love this")
	second := conv.Record("The sky is blue")

	assert.Equal(t, 2, conv.MessageCount())
	assert.Equal(t, "I love this", conv.history[0].Text)
	assert.Equal(t, "The sky is blue", conv.history[1].Text)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.Timestamp.IsZero())
}

func TestConversation_Record_SingleMessage(t *testing.T) {
	conv := newTestConversation()

	u := conv.Record("I love this")

	assert.Equal(t, sentitypes.LabelPositive, u.Label)
	assert.Equal(t, 1, conv.MessageCount())
	assert.Equal(t, sentitypes.MoodInsufficient, conv.MoodShift())
}

func TestConversation_OverallSentiment_Mean(t *testing.T) {
	conv := newTestConversation()
	seedScores(conv, 0.6, 0.2, -0.2)

	label, compound := conv.OverallSentiment()
	assert.InDelta(t, 0.2, compound, 1e-9)
	assert.Equal(t, sentitypes.LabelPositive, label)
}

func TestConversation_Distribution_CountsAndPercentages(t *testing.T) {
	conv := newTestConversation()
	seedScores(conv, 0.5, 0.5, -0.5) // two Positive, one Negative

	dist := conv.Distribution()

	assert.Equal(t, 2, dist[sentitypes.LabelPositive].Count)
	assert.Equal(t, 1, dist[sentitypes.LabelNegative].Count)
	assert.Equal(t, 0, dist[sentitypes.LabelNeutral].Count)

	assert.Equal(t, 66.7, dist[sentitypes.LabelPositive].Percentage)
	assert.Equal(t, 33.3, dist[sentitypes.LabelNegative].Percentage)
	assert.Equal(t, 0.0, dist[sentitypes.LabelNeutral].Percentage)

	total := 0
	for _, stat := range dist {
		total += stat.Count
	}
	assert.Equal(t, conv.MessageCount(), total)
}

func TestConversation_Distribution_AlwaysContainsAllLabels(t *testing.T) {
	conv := newTestConversation()
	seedScores(conv, 0.9)

	dist := conv.Distribution()
	for _, label := range sentitypes.Labels() {
		_, ok := dist[label]
		assert.True(t, ok, "label %s missing from distribution", label)
	}
}

func TestConversation_MoodShift_Improving(t *testing.T) {
	conv := newTestConversation()
	seedScores(conv, -0.8, -0.8, 0.9, 0.9)

	// First half mean -0.8, second half mean 0.9, delta 1.7.
	assert.Equal(t, sentitypes.MoodImproving, conv.MoodShift())
}

func TestConversation_MoodShift_Declining(t *testing.T) {
	conv := newTestConversation()
	seedScores(conv, 0.9, 0.9, -0.8, -0.8)

	assert.Equal(t, sentitypes.MoodDeclining, conv.MoodShift())
}

func TestConversation_MoodShift_Stable(t *testing.T) {
	conv := newTestConversation()
	seedScores(conv, 0.1, 0.1)

	assert.Equal(t, sentitypes.MoodStable, conv.MoodShift())
}

func TestConversation_MoodShift_OddCountMiddleInSecondHalf(t *testing.T) {
	conv := newTestConversation()
	// n=3: first half is index 0 only, second half is indices 1-2.
	// mean_first = -0.6, mean_second = 0.3, delta = 0.9.
	seedScores(conv, -0.6, 0.0, 0.6)

	assert.Equal(t, sentitypes.MoodImproving, conv.MoodShift())
}

func TestConversation_MoodShift_ExactThreshold(t *testing.T) {
	conv := newTestConversation()
	seedScores(conv, 0.0, 0.2)

	// delta of exactly +0.2 counts as improving.
	assert.Equal(t, sentitypes.MoodImproving, conv.MoodShift())
}

func TestConversation_Queries_Idempotent(t *testing.T) {
	conv := newTestConversation()
	seedScores(conv, 0.5, -0.3, 0.0)

	labelA, compoundA := conv.OverallSentiment()
	labelB, compoundB := conv.OverallSentiment()
	assert.Equal(t, labelA, labelB)
	assert.Equal(t, compoundA, compoundB)

	assert.Equal(t, conv.Distribution(), conv.Distribution())
	assert.Equal(t, conv.Report(), conv.Report())
}

func TestConversation_Report_Snapshot(t *testing.T) {
	conv := newTestConversation()
	seedScores(conv, 0.5, -0.5)

	rep := conv.Report()
	require.Len(t, rep.Utterances, 2)

	// The report carries its own copy of the history.
	rep.Utterances[0].Text = "mutated"
	assert.Equal(t, "message 1", conv.history[0].Text)

	assert.Equal(t, 2, rep.MessageCount)
	assert.Equal(t, sentitypes.LabelNeutral, rep.OverallLabel)
	assert.InDelta(t, 0.0, rep.MeanCompound, 1e-9)
	assert.Equal(t, sentitypes.MoodDeclining, rep.MoodShift)
}

func TestConversation_Reset(t *testing.T) {
	conv := newTestConversation()
	conv.Record("I love this")
	require.Equal(t, 1, conv.MessageCount())

	conv.Reset()

	assert.Equal(t, 0, conv.MessageCount())
	assert.Equal(t, sentitypes.MoodInsufficient, conv.MoodShift())
}

func TestConversation_EndToEnd_MixedSession(t *testing.T) {
	conv := newTestConversation()

	negative := conv.Record("Your service disappoints me")
	positive := conv.Record("Last experience was better")

	assert.Equal(t, sentitypes.LabelNegative, negative.Label)
	assert.Equal(t, sentitypes.LabelPositive, positive.Label)

	rep := conv.Report()
	assert.Equal(t, 2, rep.MessageCount)
	assert.Equal(t, 50.0, rep.Distribution[sentitypes.LabelPositive].Percentage)
	assert.Equal(t, 50.0, rep.Distribution[sentitypes.LabelNegative].Percentage)
	assert.Equal(t, sentitypes.LabelNegative, rep.OverallLabel)
}
