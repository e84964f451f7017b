package dialogue

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Separators that indicate a multi-item answer. Order matters only for
// parsing; counting checks all of them.
var listSeparators = []string{",", ";", "\n", "•", "-", "1.", "2.", "3."}

var bulletPrefix = regexp.MustCompile(`^[\s\-•\d\.\)\]]*`)

// Validate checks a raw answer against the question's declared type.
// It never fails hard: the result is a verdict plus a user-facing
// reason when invalid.
func (q Question) Validate(input string) (bool, string) {
	switch q.Kind {
	case KindScale:
		value, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return false, fmt.Sprintf("Please provide a valid number between %d and %d.", q.Min, q.Max)
		}
		if value < q.Min || value > q.Max {
			return false, fmt.Sprintf("Please provide a number between %d and %d.", q.Min, q.Max)
		}
		return true, ""

	case KindList:
		itemCount := 1
		for _, sep := range listSeparators {
			if !strings.Contains(input, sep) {
				continue
			}
			count := 0
			for _, part := range strings.Split(input, sep) {
				if strings.TrimSpace(part) != "" {
					count++
				}
			}
			if count > itemCount {
				itemCount = count
			}
		}
		// Separator-less answers still need enough substance to count
		// as a real single item.
		if itemCount >= q.MinItems && (itemCount > 1 || len(strings.TrimSpace(input)) >= 10) {
			return true, ""
		}
		return false, fmt.Sprintf("Please provide at least %d items in your response. You can separate them with commas, line breaks, or bullet points.", q.MinItems)

	default:
		if len(strings.TrimSpace(input)) >= q.MinLength {
			return true, ""
		}
		return false, fmt.Sprintf("Please provide a more detailed response (at least %d characters). Your healing deserves thoughtful reflection.", q.MinLength)
	}
}

// Coerce converts a validated raw answer into its stored form.
func (q Question) Coerce(input string) Answer {
	switch q.Kind {
	case KindScale:
		value, _ := strconv.Atoi(strings.TrimSpace(input))
		return Answer{Kind: KindScale, Scale: value}
	case KindList:
		return Answer{Kind: KindList, Items: ParseList(input)}
	default:
		return Answer{Kind: KindFreeText, Text: strings.TrimSpace(input)}
	}
}

// ParseList splits a free-form answer into items. Separators are tried
// in priority order; failing that, each line is stripped of bullet or
// number prefixes; failing that, the whole string is one item.
func ParseList(input string) []string {
	var items []string

	for _, sep := range []string{"\n", ";", ","} {
		if strings.Contains(input, sep) {
			for _, part := range strings.Split(input, sep) {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					items = append(items, trimmed)
				}
			}
			break
		}
	}

	if len(items) == 0 {
		for _, line := range strings.Split(input, "\n") {
			line = strings.TrimSpace(bulletPrefix.ReplaceAllString(strings.TrimSpace(line), ""))
			if line != "" {
				items = append(items, line)
			}
		}
	}

	if len(items) == 0 {
		items = []string{strings.TrimSpace(input)}
	}

	return items
}
