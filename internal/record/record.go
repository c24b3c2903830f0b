// Package record defines the core domain types for departure records:
// the Record value, the Kind describing one record variety, and the
// Store holding an ordered collection.
package record

import "fmt"

// Record represents a single departure entry. Time holds the exact
// string the user entered, in HH:MM form; it is parsed on demand and
// never stored in any other shape.
type Record struct {
	Name string // Destination
	No   string // Flight or train number; not unique
	Time string // Departure time as entered, HH:MM
}

// DepartureTime parses the record's time string into hour and minute.
func (r Record) DepartureTime() (hour, minute int, err error) {
	return parseTime(r.Time)
}

// InvalidTimeError reports a departure time that does not parse as a
// zero-padded 24-hour HH:MM string.
type InvalidTimeError struct {
	Value  string // The offending input
	Reason string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("%s -> %s", e.Value, e.Reason)
}

// parseTime parses a zero-padded 24-hour HH:MM string.
func parseTime(s string) (hour, minute int, err error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, &InvalidTimeError{Value: s, Reason: "invalid time format, use HH:MM"}
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, &InvalidTimeError{Value: s, Reason: "invalid time format, use HH:MM"}
		}
	}

	hour = int(s[0]-'0')*10 + int(s[1]-'0')
	minute = int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 {
		return 0, 0, &InvalidTimeError{Value: s, Reason: "hour must be between 00 and 23"}
	}
	if minute > 59 {
		return 0, 0, &InvalidTimeError{Value: s, Reason: "minute must be between 00 and 59"}
	}
	return hour, minute, nil
}
