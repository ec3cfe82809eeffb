package duckdb_test

import (
	"encoding/json"
	"testing"

	"qbank/internal/duckdb"
	"qbank/internal/question"
)

// TestFingerprintStable verifies equal content yields equal fingerprints
// regardless of JSON map key order.
func TestFingerprintStable(t *testing.T) {
	a := json.RawMessage(`{"topic":"mdps","points":5,"body":"Define an MDP."}`)
	b := json.RawMessage(`{"body":"Define an MDP.","points":5,"topic":"mdps"}`)
	fpA, err := duckdb.FingerprintJSON(a)
	if err != nil {
		t.Fatalf("fingerprint a: %v", err)
	}
	fpB, err := duckdb.FingerprintJSON(b)
	if err != nil {
		t.Fatalf("fingerprint b: %v", err)
	}
	if fpA != fpB {
		t.Fatalf("expected equal fingerprints, got %s and %s", fpA, fpB)
	}
}

// TestBankKeyChangesWithContent verifies content edits change the key.
func TestBankKeyChangesWithContent(t *testing.T) {
	bank, err := question.Parse([]byte("What is a POMDP? [5]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	key, err := duckdb.BankKey(bank)
	if err != nil {
		t.Fatalf("bank key: %v", err)
	}
	again, err := duckdb.BankKey(bank)
	if err != nil {
		t.Fatalf("bank key again: %v", err)
	}
	if key != again {
		t.Fatalf("expected stable key, got %s and %s", key, again)
	}

	edited, err := question.Parse([]byte("What is a POMDP? [10]\n"))
	if err != nil {
		t.Fatalf("parse edited: %v", err)
	}
	editedKey, err := duckdb.BankKey(edited)
	if err != nil {
		t.Fatalf("edited bank key: %v", err)
	}
	if key == editedKey {
		t.Fatalf("expected different key after content change")
	}
}

// TestQuestionKeyIgnoresPosition verifies the key depends on content only.
func TestQuestionKeyIgnoresPosition(t *testing.T) {
	first := question.Question{ID: 1, Topic: "bandits", Points: 5, Body: "Why explore?"}
	moved := question.Question{ID: 7, Topic: "Bandits", Points: 5, Body: "Why explore?"}
	keyFirst, err := duckdb.QuestionKey(first)
	if err != nil {
		t.Fatalf("question key: %v", err)
	}
	keyMoved, err := duckdb.QuestionKey(moved)
	if err != nil {
		t.Fatalf("question key moved: %v", err)
	}
	if keyFirst != keyMoved {
		t.Fatalf("expected position-independent key, got %s and %s", keyFirst, keyMoved)
	}
}
