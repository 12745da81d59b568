package extract

import "testing"

func TestClassifyContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    dataType
	}{
		{"empty", "", dataEmpty},
		{"whitespace only", "   ", dataEmpty},
		{"integer", "42", dataNumber},
		{"negative float", "-3.14", dataNumber},
		{"scientific notation", "1.5e3", dataNumber},
		{"currency symbol prefix", "$1,234.56", dataNumber},
		{"currency symbol suffix", "100€", dataNumber},
		{"currency code prefix", "EUR 100", dataNumber},
		{"currency code suffix", "100 USD", dataNumber},
		{"percentage", "45%", dataNumber},
		{"fractional percentage", "0.25%", dataNumber},
		{"comma grouped", "1,000.50", dataNumber},
		{"iso date", "2024-01-15", dataDate},
		{"slash date", "01/15/2024", dataDate},
		{"two digit year", "5-1-24", dataDate},
		{"dotted date", "15.01.2024", dataDate},
		{"iso date with time", "2024-01-15T10:30:00", dataDate},
		{"month name date", "Jan 5, 2024", dataDate},
		{"day first date", "5 January 2024", dataDate},
		{"time of day", "14:30", dataDate},
		{"twelve hour time", "2:30 PM", dataDate},
		{"plain text", "Alice", dataText},
		{"mixed text", "Room 101", dataText},
		{"currency code alone", "USD", dataText},
		{"currency code with words", "EUR one hundred", dataText},
		{"not a date", "15/x/2024", dataText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyContent(tt.content); got != tt.want {
				t.Errorf("classifyContent(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		kind dataType
		want string
	}{
		{dataEmpty, "empty"},
		{dataNumber, "number"},
		{dataDate, "date"},
		{dataText, "text"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
