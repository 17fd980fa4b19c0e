// Package timetext rewrites free-text air time mentions ("7pm ET",
// "1:30pm") between the Eastern source zone and a caller-supplied hour
// offset, adjusting adjacent day-of-week names when the shift crosses
// midnight.
package timetext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

var (
	// Matches "7pm", "1:30pm", optionally followed by the source zone label.
	mentionRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?(am|pm)\b(\s*ET\b)?`)

	// Matches an ET-labeled mention specifically, used to anchor day math.
	etMentionRe = regexp.MustCompile(`(?i)\b(\d{1,2}(?::\d{2})?(?:am|pm))\s*ET\b`)

	// Matches a trailing Pacific companion mention ("... / 4pm PT").
	ptMentionRe = regexp.MustCompile(`(?i)\s*/\s*\d{1,2}(?::\d{2})?(?:am|pm)\s*PT\b`)
)

var weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Shift rewrites every time mention in text by offsetHours. The source
// zone label is dropped from converted mentions since it no longer
// applies, and a Pacific companion mention is removed entirely. An
// offset of 0 returns the input unchanged. Mentions that fail to parse
// are left untouched.
func Shift(text string, offsetHours int) string {
	if offsetHours == 0 {
		return text
	}

	text = ptMentionRe.ReplaceAllString(text, "")

	return mentionRe.ReplaceAllStringFunc(text, func(m string) string {
		minutes, ok := parseClock(m)
		if !ok {
			return m
		}
		return formatClock(floorMod(minutes+offsetHours*60, minutesPerDay))
	})
}

// ShiftDay returns the weekday name adjusted by the number of day
// boundaries the first time mention in text crosses when shifted by
// offsetHours. Unknown day names and texts without a parseable mention
// are returned unchanged.
func ShiftDay(day, text string, offsetHours int) string {
	if day == "" || offsetHours == 0 {
		return day
	}

	mention := text
	if m := etMentionRe.FindStringSubmatch(text); m != nil {
		mention = m[1]
	} else if m := mentionRe.FindString(text); m != "" {
		mention = m
	}

	minutes, ok := parseClock(mention)
	if !ok {
		return day
	}

	delta := floorDiv(minutes+offsetHours*60, minutesPerDay)
	if delta == 0 {
		return day
	}

	for i, name := range weekdays {
		if strings.EqualFold(name, day) {
			return weekdays[floorMod(i+delta, 7)]
		}
	}
	return day
}

// Annotate applies the timezone shift to description and prefixes the
// (adjusted) air day when one is known. Descriptions without a time
// mention are returned unchanged.
func Annotate(description, airDay string, offsetHours int) string {
	if description == "" || !mentionRe.MatchString(description) {
		return description
	}

	adjusted := ShiftDay(airDay, description, offsetHours)
	converted := Shift(description, offsetHours)

	if adjusted == "" {
		return converted
	}
	return adjusted + " " + converted
}

// parseClock parses "7pm" or "1:30pm" into minutes since midnight.
// 12am maps to hour 0 and 12pm to hour 12.
func parseClock(s string) (int, bool) {
	m := mentionRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil || hours < 1 || hours > 12 {
		return 0, false
	}

	minutes := 0
	if m[2] != "" {
		minutes, err = strconv.Atoi(m[2])
		if err != nil || minutes > 59 {
			return 0, false
		}
	}

	meridiem := strings.ToLower(m[3])
	if meridiem == "pm" && hours != 12 {
		hours += 12
	} else if meridiem == "am" && hours == 12 {
		hours = 0
	}

	return hours*60 + minutes, true
}

// formatClock renders minutes since midnight back to 12-hour form,
// omitting a zero minute component ("7pm", not "7:00pm").
func formatClock(total int) string {
	total = floorMod(total, minutesPerDay)
	hours := total / 60
	minutes := total % 60

	meridiem := "am"
	switch {
	case hours == 0:
		hours = 12
	case hours == 12:
		meridiem = "pm"
	case hours > 12:
		hours -= 12
		meridiem = "pm"
	}

	if minutes == 0 {
		return fmt.Sprintf("%d%s", hours, meridiem)
	}
	return fmt.Sprintf("%d:%02d%s", hours, minutes, meridiem)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return ((a % b) + b) % b
}
