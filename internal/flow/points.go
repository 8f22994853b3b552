package flow

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// diagnosisPointPattern matches numbered list lines such as "2. Wait for confirmation.".
var diagnosisPointPattern = regexp.MustCompile(`(?m)^\d+\.[ \t].*$`)

var (
	// ErrInvalidChoiceCount is returned when the input does not contain exactly one number.
	ErrInvalidChoiceCount = errors.New("exactly one choice is required")
	// ErrChoiceOutOfRange is returned when the chosen number is not a listed option.
	ErrChoiceOutOfRange = errors.New("choice out of range")
)

// ExtractDiagnosisPoints returns the numbered lines of a diagnosis in order of appearance,
// each exactly as written. Text without numbered lines yields an empty slice.
func ExtractDiagnosisPoints(text string) []string {
	points := diagnosisPointPattern.FindAllString(text, -1)
	for i, p := range points {
		points[i] = strings.TrimRight(p, "\r")
	}
	if points == nil {
		return []string{}
	}
	return points
}

// ParseFocusChoice reads a comma separated answer, keeping only tokens made of digits.
// It returns the 1-based number chosen. Anything other than exactly one number yields
// ErrInvalidChoiceCount; a number outside [1, n] is returned together with ErrChoiceOutOfRange.
func ParseFocusChoice(input string, n int) (int, error) {
	var numbers []int
	for _, tok := range strings.Split(input, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" || strings.TrimLeft(tok, "0123456789") != "" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			// only overflow reaches here
			return 0, ErrChoiceOutOfRange
		}
		numbers = append(numbers, v)
	}
	if len(numbers) != 1 {
		return 0, ErrInvalidChoiceCount
	}
	if numbers[0] < 1 || numbers[0] > n {
		return numbers[0], ErrChoiceOutOfRange
	}
	return numbers[0], nil
}
