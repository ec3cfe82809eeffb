package question

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Issue captures a problem with one paragraph of a bank document.
type Issue struct {
	Paragraph int
	Message   string
}

// ParseError reports one or more malformed paragraphs.
type ParseError struct {
	Issues []Issue
}

// Error returns a readable message for parse failures.
func (err *ParseError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("paragraph[%d]: %s", issue.Paragraph, issue.Message))
	}
	return fmt.Sprintf("bank parse failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(paragraph int, message string) {
	collector.issues = append(collector.issues, Issue{Paragraph: paragraph, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ParseError{Issues: collector.issues}
}

// pointsPattern matches the trailing [N] point annotation of a paragraph body.
var pointsPattern = regexp.MustCompile(`\[(\d+)\]$`)

// topicPrefix introduces an optional topic line at the top of a paragraph.
const topicPrefix = "topic:"

// Parse reads a bank document into ordered questions. One question per
// paragraph, paragraphs separated by blank lines, free-form body text with a
// trailing [N] point annotation and an optional leading "topic:" line. An
// empty document yields an empty bank; malformed paragraphs produce a
// ParseError with one issue per paragraph.
func Parse(data []byte) (Bank, error) {
	collector := &issueCollector{}
	paragraphs := splitParagraphs(string(data))
	bank := Bank{Questions: make([]Question, 0, len(paragraphs))}
	for i, lines := range paragraphs {
		q, ok := parseParagraph(i, lines, collector)
		if !ok {
			continue
		}
		q.ID = len(bank.Questions) + 1
		bank.Questions = append(bank.Questions, q)
	}
	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	return bank, nil
}

// parseParagraph converts one paragraph's lines into a question without an ID.
func parseParagraph(index int, lines []string, collector *issueCollector) (Question, bool) {
	topic := DefaultTopic
	if len(lines) > 0 && strings.HasPrefix(strings.ToLower(lines[0]), topicPrefix) {
		label := NormalizeTopic(lines[0][len(topicPrefix):])
		if label == "" {
			collector.add(index, "topic label is required")
			return Question{}, false
		}
		topic = label
		lines = lines[1:]
	}

	body := strings.TrimSpace(strings.Join(lines, " "))
	match := pointsPattern.FindStringSubmatch(body)
	if match == nil {
		collector.add(index, "missing point annotation")
		return Question{}, false
	}
	points, err := strconv.Atoi(match[1])
	if err != nil {
		collector.add(index, fmt.Sprintf("invalid point value %q", match[1]))
		return Question{}, false
	}

	body = strings.TrimSpace(strings.TrimSuffix(body, match[0]))
	if body == "" {
		collector.add(index, "body is required")
		return Question{}, false
	}
	return Question{Topic: topic, Points: points, Body: body}, true
}

// splitParagraphs groups non-blank line runs, preserving document order.
func splitParagraphs(text string) [][]string {
	paragraphs := make([][]string, 0)
	var current []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, current)
	}
	return paragraphs
}
