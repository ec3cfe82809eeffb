package store

import (
	"sort"

	"qbank/internal/question"
)

// ByTopic returns the questions whose topic matches, in document order.
// Matching is case-insensitive; no match is an empty result, not an error.
func ByTopic(bank question.Bank, topic string) []question.Question {
	want := question.NormalizeTopic(topic)
	out := make([]question.Question, 0)
	for _, q := range bank.Questions {
		if question.NormalizeTopic(q.Topic) == want {
			out = append(out, q)
		}
	}
	return out
}

// ByPoints returns the questions worth exactly the given points, in document order.
func ByPoints(bank question.Bank, points int) []question.Question {
	out := make([]question.Question, 0)
	for _, q := range bank.Questions {
		if q.Points == points {
			out = append(out, q)
		}
	}
	return out
}

// ByPointRange returns the questions whose points fall within [min, max].
func ByPointRange(bank question.Bank, min, max int) []question.Question {
	out := make([]question.Question, 0)
	for _, q := range bank.Questions {
		if q.Points >= min && q.Points <= max {
			out = append(out, q)
		}
	}
	return out
}

// Get returns the question with the given id, if present.
func Get(bank question.Bank, id int) (question.Question, bool) {
	for _, q := range bank.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return question.Question{}, false
}

// Topics returns the sorted unique normalized topics in a bank.
func Topics(bank question.Bank) []string {
	seen := map[string]struct{}{}
	for _, q := range bank.Questions {
		seen[question.NormalizeTopic(q.Topic)] = struct{}{}
	}
	topics := make([]string, 0, len(seen))
	for topic := range seen {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// TotalPoints sums the point values of every question in a bank.
func TotalPoints(bank question.Bank) int {
	total := 0
	for _, q := range bank.Questions {
		total += q.Points
	}
	return total
}
