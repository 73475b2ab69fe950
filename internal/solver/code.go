package solver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedCode is returned for codes not consisting of digits followed by the activation key.
var ErrMalformedCode = errors.New("malformed code")

// ParseCode returns the numeric value of code, the digits preceding the trailing activation key.
// A code without digits has the value zero.
func ParseCode(code string) (int, error) {
	digits, ok := strings.CutSuffix(code, "A")
	if !ok {
		return 0, fmt.Errorf("%q: missing activation key: %w", code, ErrMalformedCode)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("%q: invalid key %q: %w", code, digits[i], ErrMalformedCode)
		}
	}
	if digits == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%q: %w: %w", code, ErrMalformedCode, err)
	}
	return value, nil
}

// Chunks splits seq after every activation key.
// A trailing remainder without activation key forms the last chunk.
func Chunks(seq string) []string {
	var chunks []string
	for seq != "" {
		i := strings.IndexByte(seq, 'A')
		if i < 0 {
			return append(chunks, seq)
		}
		chunks = append(chunks, seq[:i+1])
		seq = seq[i+1:]
	}
	return chunks
}
