package numeric

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatLocale formats num with exactly places decimal digits using the
// digit grouping and decimal separator of the given locale.
// The value is rounded with Round first, so labels agree with the values
// the rest of the toolkit computes.
//
// language.Und yields the same text as RoundAndFormat.
func FormatLocale(tag language.Tag, num float64, places int) string {
	v := Round(num, places)
	if tag == language.Und {
		return RoundAndFormat(v, places)
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%."+strconv.Itoa(places)+"f", v)
}

// ParseLocale parses a BCP 47 tag. An empty string yields language.Und.
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return language.Und, nil
	}
	return language.Parse(s)
}
