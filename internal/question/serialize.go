package question

import (
	"fmt"
	"strings"
)

// Serialize renders a bank back into the document format read by Parse.
// Parse(Serialize(bank)) yields a bank equal to the input.
func Serialize(bank Bank) []byte {
	paragraphs := make([]string, 0, len(bank.Questions))
	for _, q := range bank.Questions {
		var builder strings.Builder
		if q.Topic != DefaultTopic {
			fmt.Fprintf(&builder, "%s %s\n", topicPrefix, q.Topic)
		}
		fmt.Fprintf(&builder, "%s [%d]", q.Body, q.Points)
		paragraphs = append(paragraphs, builder.String())
	}
	if len(paragraphs) == 0 {
		return []byte{}
	}
	return []byte(strings.Join(paragraphs, "\n\n") + "\n")
}
