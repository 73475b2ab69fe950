package solver

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-ricrob/keypadsolver/internal/solver"
)

// ReadCodes reads one code per line from r. Blank lines are skipped.
func ReadCodes(r io.Reader) ([]string, error) {
	var codes []string
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		code := strings.TrimSpace(scanner.Text())
		if code == "" {
			continue
		}
		if _, err := solver.ParseCode(code); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		codes = append(codes, code)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}
