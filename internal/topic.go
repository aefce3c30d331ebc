package internal

import (
	"fmt"
	"regexp"
	"strings"
)

// casualPattern matches closing or social remarks that never count as
// off-topic, regardless of the session topic.
var casualPattern = regexp.MustCompile(`(?i)\b(thank(s| you)?|bye|see you|goodbye|your welcome|you're welcome|hi|hello)\b`)

// TopicGuard tracks the subject of a session. The topic is the verbatim
// text of the first message sent, set exactly once and never updated.
type TopicGuard struct {
	topic string
}

// Set records the session topic. Later calls are ignored.
func (g *TopicGuard) Set(text string) {
	if g.topic == "" {
		g.topic = text
	}
}

// Topic returns the recorded topic, or "" if none has been set.
func (g *TopicGuard) Topic() string {
	return g.topic
}

// OffTopic reports whether text drifts from the session topic. A message
// containing the topic (case-folded) or matching the casual pattern is
// on-topic. With no topic set, nothing is off-topic.
func (g *TopicGuard) OffTopic(text string) bool {
	if g.topic == "" {
		return false
	}
	if strings.Contains(strings.ToLower(text), strings.ToLower(g.topic)) {
		return false
	}
	return !casualPattern.MatchString(text)
}

// Warning returns the user-facing nudge shown for an off-topic message.
// It quotes the stored topic verbatim.
func (g *TopicGuard) Warning() string {
	return fmt.Sprintf("Let's try to stay on topic: %q. You can ask more about it or say 'thanks' if you're done!", g.topic)
}
