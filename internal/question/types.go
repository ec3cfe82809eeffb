package question

// Question represents a single review item with topic, points, and body text.
type Question struct {
	ID     int    `json:"id"`
	Topic  string `json:"topic"`
	Points int    `json:"points"`
	Body   string `json:"body"`
}

// Bank is the ordered collection of questions loaded from one document.
// Order matches document order and never changes after load.
type Bank struct {
	Questions []Question `json:"questions"`
}

// Len returns the number of questions in the bank.
func (b Bank) Len() int {
	return len(b.Questions)
}
