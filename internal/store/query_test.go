package store

import (
	"reflect"
	"testing"

	"qbank/internal/question"
)

func sampleBank(t *testing.T) question.Bank {
	t.Helper()
	payload := `topic: bandits
Explain the exploration-exploitation trade-off. [5]

topic: mdps
Define the Markov property. [5]

topic: bandits
Compare sample-average and constant step-size updates. [10]

What is a running average? [2]
`
	bank, err := question.Parse([]byte(payload))
	if err != nil {
		t.Fatalf("parse sample: %v", err)
	}
	return bank
}

// TestByTopic verifies topic queries preserve document order.
func TestByTopic(t *testing.T) {
	bank := sampleBank(t)
	got := ByTopic(bank, "bandits")
	if len(got) != 2 {
		t.Fatalf("expected 2 bandits questions, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("expected document order, got ids %d and %d", got[0].ID, got[1].ID)
	}
	if matches := ByTopic(bank, "  BANDITS "); len(matches) != 2 {
		t.Fatalf("expected case-insensitive match, got %d", len(matches))
	}
	if matches := ByTopic(bank, "pomdps"); len(matches) != 0 {
		t.Fatalf("expected empty result for unknown topic, got %d", len(matches))
	}
}

// TestByPoints verifies exact point queries and the empty-not-error contract.
func TestByPoints(t *testing.T) {
	bank := sampleBank(t)
	if got := ByPoints(bank, 5); len(got) != 2 {
		t.Fatalf("expected 2 questions worth 5, got %d", len(got))
	}
	if got := ByPoints(bank, 7); len(got) != 0 {
		t.Fatalf("expected no questions worth 7, got %d", len(got))
	}
}

// TestByPointRange verifies inclusive range filtering.
func TestByPointRange(t *testing.T) {
	bank := sampleBank(t)
	got := ByPointRange(bank, 2, 5)
	if len(got) != 3 {
		t.Fatalf("expected 3 questions in [2,5], got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 || got[2].ID != 4 {
		t.Fatalf("unexpected order: %+v", got)
	}
}

// TestTopicPartition verifies the union of topic queries reconstructs the
// bank exactly once per question.
func TestTopicPartition(t *testing.T) {
	bank := sampleBank(t)
	seen := map[int]int{}
	total := 0
	for _, topic := range Topics(bank) {
		for _, q := range ByTopic(bank, topic) {
			seen[q.ID]++
			total++
		}
	}
	if total != bank.Len() {
		t.Fatalf("expected %d questions across topics, got %d", bank.Len(), total)
	}
	for _, q := range bank.Questions {
		if seen[q.ID] != 1 {
			t.Fatalf("question %d appeared %d times", q.ID, seen[q.ID])
		}
	}
}

// TestTopics verifies the topic inventory is sorted and unique.
func TestTopics(t *testing.T) {
	bank := sampleBank(t)
	want := []string{"bandits", "general", "mdps"}
	if got := Topics(bank); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestTotalPoints verifies point totals.
func TestTotalPoints(t *testing.T) {
	if got := TotalPoints(sampleBank(t)); got != 22 {
		t.Fatalf("expected 22 total points, got %d", got)
	}
}

// TestGet verifies id lookup.
func TestGet(t *testing.T) {
	bank := sampleBank(t)
	q, ok := Get(bank, 3)
	if !ok || q.Points != 10 {
		t.Fatalf("unexpected lookup result: %+v ok=%v", q, ok)
	}
	if _, ok := Get(bank, 99); ok {
		t.Fatalf("expected miss for id 99")
	}
}
