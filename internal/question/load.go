package question

import (
	"fmt"
	"os"
)

// Load reads and parses a bank document from disk.
func Load(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("read bank: %w", err)
	}
	return Parse(data)
}
