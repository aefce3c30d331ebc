package internal

import "strings"

// Title derivation constants. The thresholds are deliberate: a first pass
// keeps titleWords words, and when that comes out shorter than shortTitleLen
// for a message longer than shortTitleLen, a second pass widens to
// widenedTitleWords. The ellipsis marks titles cut from longer messages.
const (
	titleWords         = 6
	widenedTitleWords  = 8
	ellipsisLen        = 40
	widenedEllipsisLen = 50
	shortTitleLen      = 10
	defaultTitle       = "New conversation"
)

// DeriveTitle maps a session to a short display label taken from its first
// user message. Sessions with no user message fall back to their first
// message; sessions with no messages at all get the untitled label.
func DeriveTitle(s *Session) string {
	if s == nil || len(s.Messages) == 0 {
		return defaultTitle
	}

	msg := s.FirstUserMessage()
	if msg == nil {
		msg = &s.Messages[0]
	}
	return deriveTitleFromText(msg.Text)
}

func deriveTitleFromText(text string) string {
	words := strings.Fields(text)

	title := joinFirst(words, titleWords)
	if len(text) > ellipsisLen {
		title += "..."
	}

	if len(title) < shortTitleLen && len(text) > shortTitleLen {
		title = joinFirst(words, widenedTitleWords)
		if len(text) > widenedEllipsisLen {
			title += "..."
		}
	}

	if title == "" {
		return defaultTitle
	}
	return title
}

func joinFirst(words []string, n int) string {
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
