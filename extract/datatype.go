package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// dataType classifies cell content for the data-type-consistency header
// signal. Classification is shape-based only; content is never
// re-interpreted or parsed into values.
type dataType int

const (
	dataEmpty dataType = iota
	dataNumber
	dataDate
	dataText
)

func (d dataType) String() string {
	switch d {
	case dataEmpty:
		return "empty"
	case dataNumber:
		return "number"
	case dataDate:
		return "date"
	default:
		return "text"
	}
}

// classifyContent determines the data type of cell content.
func classifyContent(content string) dataType {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return dataEmpty
	}
	if isNumericContent(trimmed) {
		return dataNumber
	}
	if isDateContent(trimmed) {
		return dataDate
	}
	return dataText
}

var currencySymbols = []string{"$", "€", "¥", "£", "₹", "₽", "₩", "₪", "₦", "₡"}

var currencyCodes = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true,
	"CNY": true, "INR": true, "RUB": true, "KRW": true,
}

// isNumericContent reports whether content has a numeric shape, including
// currency amounts, percentages, comma-grouped numbers and scientific
// notation.
func isNumericContent(s string) bool {
	if parsesAsNumber(s) {
		return true
	}

	// Currency symbol prefix or suffix ($100, 100€)
	for _, symbol := range currencySymbols {
		if strings.HasPrefix(s, symbol) || strings.HasSuffix(s, symbol) {
			number := strings.TrimSuffix(strings.TrimPrefix(s, symbol), symbol)
			if parsesAsNumber(strings.ReplaceAll(number, ",", "")) {
				return true
			}
		}
	}

	// Currency code on either side (USD 100, 100 EUR)
	if parts := strings.Fields(s); len(parts) == 2 {
		if currencyCodes[parts[0]] && parsesAsNumber(parts[1]) {
			return true
		}
		if currencyCodes[parts[1]] && parsesAsNumber(parts[0]) {
			return true
		}
	}

	// Percentage (50%, 0.25%)
	if strings.HasSuffix(s, "%") {
		return parsesAsNumber(strings.TrimSuffix(s, "%"))
	}

	// Comma-grouped (1,000.50)
	if strings.Contains(s, ",") {
		return parsesAsNumber(strings.ReplaceAll(s, ",", ""))
	}

	return false
}

// parsesAsNumber reports whether s parses directly as a float. Scientific
// notation is covered here.
func parsesAsNumber(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

var datePatterns = []*regexp.Regexp{
	// Numeric dates: MM/DD/YYYY, DD-MM-YY, YYYY/MM/DD
	regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}$`),
	regexp.MustCompile(`^\d{4}[/-]\d{1,2}[/-]\d{1,2}$`),
	// ISO 8601 with time
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`),
	// Dotted: DD.MM.YYYY
	regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{2,4}$`),
	// Date with time: MM/DD/YYYY HH:MM(:SS)
	regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\s+\d{1,2}:\d{2}(:\d{2})?$`),
	// Month names: Jan 5, 2024 / 5 January 2024
	regexp.MustCompile(`^(?i:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[A-Za-z]*\.?\s+\d{1,2},?\s+\d{2,4}$`),
	regexp.MustCompile(`^\d{1,2}\s+(?i:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[A-Za-z]*\.?\s+\d{2,4}$`),
	// Time only: HH:MM(:SS) (AM/PM)
	regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?(\s*(?i:am|pm))?$`),
}

// isDateContent reports whether content matches a common date or time
// shape.
func isDateContent(s string) bool {
	for _, pattern := range datePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}
