package quiz

import "testing"

func TestLetterIndexRoundTrip(t *testing.T) {
	letters := []string{"A", "B", "C", "D"}
	for want, letter := range letters {
		idx, err := LetterToIndex(letter)
		if err != nil {
			t.Fatalf("LetterToIndex(%q): %v", letter, err)
		}
		if idx != want {
			t.Errorf("LetterToIndex(%q) = %d, want %d", letter, idx, want)
		}
		back, err := IndexToLetter(idx)
		if err != nil {
			t.Fatalf("IndexToLetter(%d): %v", idx, err)
		}
		if back != letter {
			t.Errorf("round trip %q -> %d -> %q", letter, idx, back)
		}
	}
}

func TestLetterToIndex_Invalid(t *testing.T) {
	for _, bad := range []string{"", "E", "a", "AB"} {
		if _, err := LetterToIndex(bad); err == nil {
			t.Errorf("LetterToIndex(%q) expected error", bad)
		}
	}
}

func TestIndexToLetter_OutOfRange(t *testing.T) {
	for _, bad := range []int{-1, 4, 100} {
		if _, err := IndexToLetter(bad); err == nil {
			t.Errorf("IndexToLetter(%d) expected error", bad)
		}
	}
}
