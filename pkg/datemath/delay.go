package datemath

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dayPattern   = regexp.MustCompile(`(?i)(\d+)\s*days?`)
	monthPattern = regexp.MustCompile(`(?i)(\d+)\s*months?`)
)

// ParseDelay extracts a Delay from free text such as "5 days 2 months" or "2 Months, 10 days".
//
// Parsing is permissive: days and months are matched independently, the first
// match of each wins, and anything absent or unparseable counts as zero.
// It never fails.
func ParseDelay(text string) Delay {
	d := Delay{Original: text}
	if strings.TrimSpace(text) == "" {
		d.Original = NoDelay
		return d
	}

	d.Days = firstCount(dayPattern, text)
	d.Months = firstCount(monthPattern, text)
	return d
}

func firstCount(re *regexp.Regexp, text string) int {
	m := re.FindStringSubmatch(text)
	if len(m) != 2 {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
