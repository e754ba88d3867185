package summarize

import (
	"regexp"
	"strings"
)

const datePatternSrc = `(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}-\d{2}-\d{2}|` +
	`(?:january|february|march|april|may|june|july|august|september|october|november|december)` +
	`\s+\d{1,2},?\s+\d{4})`

var (
	dateRe      = regexp.MustCompile(`(?i)\b` + datePatternSrc + `\b`)
	dateRangeRe = regexp.MustCompile(`(?i)\b(` + datePatternSrc + `)\s*(?:to|through|-|–)\s*(` + datePatternSrc + `)\b`)
	amountRe    = regexp.MustCompile(`\$\s?\d[\d,]*(?:\.\d{2})?`)
)

// extractDate looks for a date in three tiers: immediately after the
// hint phrase, inside a ±50 character window around the hint, then
// anywhere in the text. Returns "" when nothing date-shaped exists.
func extractDate(text, hint string) string {
	if idx := indexFold(text, hint); idx >= 0 {
		after := clip(text, idx+len(hint), idx+len(hint)+40)
		if m := dateRe.FindString(after); m != "" {
			return m
		}
		window := clip(text, idx-50, idx+len(hint)+50)
		if m := dateRe.FindString(window); m != "" {
			return m
		}
	}
	return dateRe.FindString(text)
}

// extractAmount follows the same three-tier fallback as extractDate,
// with currency-amount patterns. The result keeps its "$" prefix.
func extractAmount(text, hint string) string {
	if idx := indexFold(text, hint); idx >= 0 {
		after := clip(text, idx+len(hint), idx+len(hint)+40)
		if m := amountRe.FindString(after); m != "" {
			return tidyAmount(m)
		}
		window := clip(text, idx-50, idx+len(hint)+50)
		if m := amountRe.FindString(window); m != "" {
			return tidyAmount(m)
		}
	}
	return tidyAmount(amountRe.FindString(text))
}

func extractDateRange(text string) (string, string) {
	match := dateRangeRe.FindStringSubmatch(text)
	if match == nil {
		return "", ""
	}
	return match[1], match[2]
}

var entityPatterns = map[string][]*regexp.Regexp{
	"debtor": {
		regexp.MustCompile(`(?i)(?:name of )?debtor(?:'s name)?\s*[:\-]\s*([^\n,;]{2,60})`),
		regexp.MustCompile(`(?i)in the matter of the (?:bankruptcy|consumer proposal|proposal) of\s+([^\n,;]{2,60})`),
	},
	"trustee": {
		regexp.MustCompile(`(?i)(?:licensed insolvency )?trustee(?:'s name)?\s*[:\-]\s*([^\n,;]{2,60})`),
	},
	"administrator": {
		regexp.MustCompile(`(?i)administrator(?:'s name)?\s*[:\-]\s*([^\n,;]{2,60})`),
	},
	"creditor": {
		regexp.MustCompile(`(?i)(?:name of )?creditor(?:'s name)?\s*[:\-]\s*([^\n,;]{2,60})`),
	},
	"account_holder": {
		regexp.MustCompile(`(?i)account holder\s*[:\-]\s*([^\n,;]{2,60})`),
		regexp.MustCompile(`(?i)prepared for\s*[:\-]?\s*([^\n,;]{2,60})`),
	},
}

// extractEntity tries each labeled pattern for the role in order and
// returns the first hit, or "" when none match.
func extractEntity(text, role string) string {
	for _, re := range entityPatterns[role] {
		if match := re.FindStringSubmatch(text); match != nil {
			if name := cleanName(match[1]); name != "" {
				return name
			}
		}
	}
	return ""
}

func cleanName(raw string) string {
	name := strings.TrimSpace(raw)
	name = strings.Trim(name, ".:;-")
	return strings.TrimSpace(name)
}

func tidyAmount(raw string) string {
	return strings.ReplaceAll(raw, "$ ", "$")
}

func indexFold(text, sub string) int {
	return strings.Index(strings.ToLower(text), strings.ToLower(sub))
}

func clip(text string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(text) {
		to = len(text)
	}
	if from >= to {
		return ""
	}
	return text[from:to]
}
