package stringer

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	printer = message.NewPrinter(language.English)
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

func FormatCount(n uint64) string {
	return printer.Sprintf("%d", n)
}

// FormatPercent formats part/total as a percentage with one decimal.
func FormatPercent(part, total uint64) string {
	if total == 0 {
		return "0.0%"
	}
	return printer.Sprintf("%.1f%%", float64(part)*100/float64(total))
}
