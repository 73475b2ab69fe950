package planner

import (
	"strings"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
)

// compare orders segments: shorter first, then by the rank of the first differing move.
func compare(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			return keypad.Move(a[i]).Rank() - keypad.Move(b[i]).Rank()
		}
	}
	return 0
}

// batched reports whether no move of s reappears after a different move interrupted its run.
func batched(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1] && strings.IndexByte(s[:i], s[i]) >= 0 {
			return false
		}
	}
	return true
}
