// Package shell provides the interactive conversation loop for SentiBot.
// It reads user messages line by line, routes session commands, feeds
// everything else through the conversation aggregator, and renders the
// final analysis when the session ends.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"sentibot/internal/conversation"
	"sentibot/internal/logger"
	"sentibot/internal/output"
	"sentibot/internal/reply"
)

// Session wires one conversation to the terminal. It is single-threaded:
// the loop processes one line at a time from prompt to reply.
type Session struct {
	conv          *conversation.Conversation
	selector      *reply.Selector
	renderer      *output.Renderer
	prompt        string
	echoSentiment bool
}

// NewSession creates an interactive session over conv.
func NewSession(conv *conversation.Conversation, selector *reply.Selector, renderer *output.Renderer, prompt string, echoSentiment bool) *Session {
	return &Session{
		conv:          conv,
		selector:      selector,
		renderer:      renderer,
		prompt:        prompt,
		echoSentiment: echoSentiment,
	}
}

// Run executes the conversation loop until the user quits, interrupts, or
// the input stream ends, then renders the conversation analysis.
func (s *Session) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("initializing input: %w", err)
	}
	defer func() { _ = rl.Close() }()

loop:
	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			// Interrupt on a non-empty line clears it; on an empty
			// line it ends the session.
			if len(line) == 0 {
				s.renderer.Notice("Conversation interrupted...")
				break loop
			}
			continue
		case errors.Is(err, io.EOF):
			break loop
		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if s.dispatchCommand(input) {
			break loop
		}
	}

	s.finish()
	return nil
}

// dispatchCommand handles session commands and regular messages. It
// returns true when the session should end.
func (s *Session) dispatchCommand(input string) bool {
	switch strings.ToLower(input) {
	case "quit", "exit", "bye", "goodbye":
		s.renderer.Notice("Ending conversation...")
		return true
	case "toggle":
		s.echoSentiment = !s.echoSentiment
		status := "disabled"
		if s.echoSentiment {
			status = "enabled"
		}
		s.renderer.Notice(fmt.Sprintf("Per-message sentiment display %s", status))
		return false
	case "reset":
		s.conv.Reset()
		s.renderer.Notice("Conversation history cleared, starting fresh")
		return false
	case "report":
		s.renderer.Report(s.conv.Report(), false)
		return false
	case "help":
		s.printHelp()
		return false
	}

	s.handleMessage(input)
	return false
}

func (s *Session) handleMessage(input string) {
	u := s.conv.Record(input)
	logger.Debug("message recorded", "label", u.Label, "compound", u.Compound, "count", s.conv.MessageCount())

	if s.echoSentiment {
		s.renderer.SentimentEcho(u)
	}
	s.renderer.BotReply(s.selector.Select(input, u.Label))
}

func (s *Session) printHelp() {
	s.renderer.Notice("Session commands:")
	s.renderer.Notice("  quit | exit | bye | goodbye  end the conversation and show the analysis")
	s.renderer.Notice("  toggle                       enable/disable per-message sentiment display")
	s.renderer.Notice("  reset                        discard history and start a new conversation")
	s.renderer.Notice("  report                       show the analysis for the conversation so far")
	s.renderer.Notice("  help                         show this list")
}

func (s *Session) finish() {
	if s.conv.MessageCount() == 0 {
		s.renderer.Notice("No conversation to analyze.")
		return
	}
	s.renderer.BotReply(s.selector.Farewell())
	s.renderer.Report(s.conv.Report(), true)
}
