package pennybook

import (
	"regexp"
	"strings"
	"unicode"
)

// Validation is the result of a single field validation. Field checks are
// returned as values rather than errors so a caller can combine several of
// them before deciding whether to proceed.
type Validation struct {
	Valid bool
	Error string
}

func valid() Validation             { return Validation{Valid: true} }
func invalid(msg string) Validation { return Validation{Valid: false, Error: msg} }

var (
	descriptionRE = regexp.MustCompile(`^\S(?:.*\S)?$`)
	amountRE      = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d{1,2})?$`)
	categoryRE    = regexp.MustCompile(`^[A-Za-z]+(?:[ -][A-Za-z]+)*$`)
	wordRE        = regexp.MustCompile(`\w+`)
	currencyRE    = regexp.MustCompile(`\d+[.,]\d{2}`)
)

// ValidateDescription checks that a description is non-empty with no
// leading or trailing whitespace.
func ValidateDescription(value string) Validation {
	if value == "" || !descriptionRE.MatchString(value) {
		return invalid("Description cannot start or end with spaces")
	}
	return valid()
}

// ValidateAmount checks that an amount is a non-negative decimal with at
// most two fractional digits and no superfluous leading zeros.
func ValidateAmount(value string) Validation {
	if value == "" || !amountRE.MatchString(value) {
		return invalid("Enter valid amount (e.g., 12.50)")
	}
	return valid()
}

// ValidateDate checks that a date is a real calendar date in YYYY-MM-DD form.
func ValidateDate(value string) Validation {
	if _, err := ParseDate(value); err != nil {
		return invalid("Date must be in YYYY-MM-DD format")
	}
	return valid()
}

// ValidateCategory checks that a category label contains only letters,
// spaces, and hyphens.
func ValidateCategory(value string) Validation {
	if value == "" || !categoryRE.MatchString(value) {
		return invalid("Category can only contain letters, spaces, and hyphens")
	}
	return valid()
}

// HasDoubledWord reports whether the text repeats a word back to back
// ("paid paid rent"), a common data-entry slip worth warning about.
func HasDoubledWord(text string) bool {
	locs := wordRE.FindAllStringIndex(text, -1)
	for i := 1; i < len(locs); i++ {
		gap := text[locs[i-1][1]:locs[i][0]]
		if strings.TrimFunc(gap, unicode.IsSpace) != "" {
			continue
		}
		prev := strings.ToLower(text[locs[i-1][0]:locs[i-1][1]])
		cur := strings.ToLower(text[locs[i][0]:locs[i][1]])
		if prev == cur {
			return true
		}
	}
	return false
}

// DetectCurrencyPattern returns the first amount-looking run in the text
// (digits with a two-digit decimal part), or "" if there is none.
func DetectCurrencyPattern(text string) string {
	return currencyRE.FindString(text)
}
