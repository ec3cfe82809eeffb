package question

import "strings"

// DefaultTopic labels questions whose paragraph carries no topic line.
const DefaultTopic = "general"

// NormalizeTopic trims whitespace and lowercases a topic label for matching.
func NormalizeTopic(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// RemapTopics returns a copy of the bank with topics rewritten through the
// alias map. Keys and values are normalized; unknown topics pass through.
func RemapTopics(bank Bank, aliases map[string]string) Bank {
	if len(aliases) == 0 {
		return bank
	}
	out := Bank{Questions: make([]Question, len(bank.Questions))}
	copy(out.Questions, bank.Questions)
	for i, q := range out.Questions {
		if target, ok := aliases[NormalizeTopic(q.Topic)]; ok {
			out.Questions[i].Topic = NormalizeTopic(target)
		}
	}
	return out
}
