package quiz

import "fmt"

// optionLetters are the wire labels the backend uses for answer options.
var optionLetters = []string{"A", "B", "C", "D"}

// LetterToIndex converts a backend answer letter (A-D) to a 0-based
// option index.
func LetterToIndex(letter string) (int, error) {
	for i, l := range optionLetters {
		if l == letter {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid answer letter %q", letter)
}

// IndexToLetter converts a 0-based option index to its answer letter.
func IndexToLetter(index int) (string, error) {
	if index < 0 || index >= len(optionLetters) {
		return "", fmt.Errorf("option index %d out of range", index)
	}
	return optionLetters[index], nil
}
