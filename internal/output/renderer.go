// Package output renders SentiBot's terminal surface: the welcome banner,
// per-message sentiment echo lines, bot replies, and the end-of-session
// conversation analysis. Styling uses lipgloss with sentiment-keyed colors
// and falls back to plain text on dumb terminals or when requested.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"sentibot/pkg/sentitypes"
)

const rulerWidth = 70

// Renderer writes styled (or plain) chatbot output to a single writer.
type Renderer struct {
	w     io.Writer
	plain bool

	positive lipgloss.Style
	negative lipgloss.Style
	neutral  lipgloss.Style
	header   lipgloss.Style
	notice   lipgloss.Style
	bot      lipgloss.Style
}

// NewRenderer creates a Renderer for w. With plain set, or when the
// environment offers no color support, all styling is dropped.
func NewRenderer(w io.Writer, plain bool) *Renderer {
	if !plain && termenv.EnvColorProfile() == termenv.Ascii {
		plain = true
	}

	return &Renderer{
		w:        w,
		plain:    plain,
		positive: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		negative: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		neutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		bot:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	}
}

// Banner prints the welcome header and session instructions.
func (r *Renderer) Banner(version string) {
	ruler := strings.Repeat("=", rulerWidth)
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styled(r.header, ruler))
	fmt.Fprintln(r.w, r.styled(r.header, fmt.Sprintf("  SENTIBOT v%s - SENTIMENT ANALYSIS CHATBOT", version)))
	fmt.Fprintln(r.w, r.styled(r.header, ruler))
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styled(r.notice, "Type 'quit' or 'exit' to end the conversation and see the analysis"))
	fmt.Fprintln(r.w, r.styled(r.notice, "Type 'toggle' to enable/disable per-message sentiment display"))
	fmt.Fprintln(r.w, r.styled(r.notice, "Type 'help' for all session commands"))
	fmt.Fprintln(r.w, r.styled(r.header, ruler))
	fmt.Fprintln(r.w)
}

// SentimentEcho prints the per-message classification line.
func (r *Renderer) SentimentEcho(u sentitypes.Utterance) {
	line := fmt.Sprintf("→ Sentiment: %s (score: %.3f)", u.Label, u.Compound)
	fmt.Fprintln(r.w, r.styled(r.labelStyle(u.Label), line))
}

// BotReply prints the chatbot's response.
func (r *Renderer) BotReply(text string) {
	fmt.Fprintf(r.w, "%s %s\n\n", r.styled(r.bot, "Bot:"), text)
}

// Notice prints an informational session message.
func (r *Renderer) Notice(text string) {
	fmt.Fprintln(r.w, r.styled(r.notice, text))
}

// Report prints the full conversation analysis. The message-by-message
// breakdown is included only when breakdown is set.
func (r *Renderer) Report(rep sentitypes.Report, breakdown bool) {
	ruler := strings.Repeat("=", rulerWidth)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styled(r.header, ruler))
	fmt.Fprintln(r.w, r.styled(r.header, "  CONVERSATION ANALYSIS"))
	fmt.Fprintln(r.w, r.styled(r.header, ruler))
	fmt.Fprintln(r.w)

	overall := r.styled(r.labelStyle(rep.OverallLabel), string(rep.OverallLabel))
	fmt.Fprintf(r.w, "Overall Conversation Sentiment: %s\n", overall)
	fmt.Fprintf(r.w, "Compound Score: %.3f\n", rep.MeanCompound)
	fmt.Fprintf(r.w, "Total User Messages: %d\n\n", rep.MessageCount)

	fmt.Fprintln(r.w, r.styled(r.header, "Sentiment Distribution:"))
	for _, label := range sentitypes.Labels() {
		stat := rep.Distribution[label]
		line := fmt.Sprintf("  %s: %d messages (%.1f%%)", label, stat.Count, stat.Percentage)
		fmt.Fprintln(r.w, r.styled(r.labelStyle(label), line))
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styled(r.header, "Mood Shift Analysis:"))
	fmt.Fprintf(r.w, "  %s\n", MoodShiftDescription(rep.MoodShift))

	if breakdown && len(rep.Utterances) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.styled(r.header, ruler))
		fmt.Fprintln(r.w, r.styled(r.header, "  MESSAGE-BY-MESSAGE BREAKDOWN"))
		fmt.Fprintln(r.w, r.styled(r.header, ruler))
		fmt.Fprintln(r.w)

		for _, u := range rep.Utterances {
			fmt.Fprintf(r.w, "You: %q\n", u.Text)
			line := fmt.Sprintf("  → Sentiment: %s (score: %.3f)", u.Label, u.Compound)
			fmt.Fprintf(r.w, "%s\n\n", r.styled(r.labelStyle(u.Label), line))
		}
	}

	fmt.Fprintln(r.w, r.styled(r.header, ruler))
	fmt.Fprintln(r.w)
}

// MoodShiftDescription maps a mood-shift verdict to its display sentence.
func MoodShiftDescription(m sentitypes.MoodShift) string {
	switch m {
	case sentitypes.MoodImproving:
		return "Improving (conversation became more positive)"
	case sentitypes.MoodDeclining:
		return "Declining (conversation became more negative)"
	case sentitypes.MoodStable:
		return "Stable (consistent mood throughout)"
	default:
		return "Insufficient data"
	}
}

func (r *Renderer) labelStyle(label sentitypes.Label) lipgloss.Style {
	switch label {
	case sentitypes.LabelPositive:
		return r.positive
	case sentitypes.LabelNegative:
		return r.negative
	default:
		return r.neutral
	}
}

func (r *Renderer) styled(style lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return style.Render(text)
}
