// Package geotime resolves the loose timezone names people write in config
// files ("amsterdam", "PST", "europe/berlin", "NL") to IANA locations.
package geotime

import (
	"strings"
	"time"
	_ "time/tzdata" // resolution must not depend on the host zoneinfo

	"github.com/teranos/fuzzytime/errors"
)

// Local is the name that selects the host timezone
const Local = "Local"

var aliases = map[string]string{
	// abbreviations
	"pst":  "America/Los_Angeles",
	"pdt":  "America/Los_Angeles",
	"est":  "America/New_York",
	"edt":  "America/New_York",
	"cst":  "America/Chicago",
	"cdt":  "America/Chicago",
	"mst":  "America/Denver",
	"mdt":  "America/Denver",
	"bst":  "Europe/London",
	"cet":  "Europe/Berlin",
	"cest": "Europe/Berlin",
	"ist":  "Asia/Kolkata",
	"sgt":  "Asia/Singapore",
	"hkt":  "Asia/Hong_Kong",
	"aest": "Australia/Sydney",

	// cities and countries
	"amsterdam":     "Europe/Amsterdam",
	"netherlands":   "Europe/Amsterdam",
	"rotterdam":     "Europe/Amsterdam",
	"berlin":        "Europe/Berlin",
	"germany":       "Europe/Berlin",
	"munich":        "Europe/Berlin",
	"london":        "Europe/London",
	"england":       "Europe/London",
	"edinburgh":     "Europe/London",
	"dublin":        "Europe/Dublin",
	"paris":         "Europe/Paris",
	"madrid":        "Europe/Madrid",
	"rome":          "Europe/Rome",
	"stockholm":     "Europe/Stockholm",
	"oslo":          "Europe/Oslo",
	"copenhagen":    "Europe/Copenhagen",
	"helsinki":      "Europe/Helsinki",
	"new york":      "America/New_York",
	"boston":        "America/New_York",
	"washington":    "America/New_York",
	"san francisco": "America/Los_Angeles",
	"los angeles":   "America/Los_Angeles",
	"seattle":       "America/Los_Angeles",
	"vancouver":     "America/Vancouver",
	"toronto":       "America/Toronto",
	"montreal":      "America/Toronto",
	"mexico city":   "America/Mexico_City",
	"sao paulo":     "America/Sao_Paulo",
	"buenos aires":  "America/Argentina/Buenos_Aires",
	"sydney":        "Australia/Sydney",
	"melbourne":     "Australia/Melbourne",
	"brisbane":      "Australia/Brisbane",
	"singapore":     "Asia/Singapore",
	"hong kong":     "Asia/Hong_Kong",
	"tokyo":         "Asia/Tokyo",
	"mumbai":        "Asia/Kolkata",
	"bangalore":     "Asia/Kolkata",
	"tel aviv":      "Asia/Jerusalem",
	"dubai":         "Asia/Dubai",

	// ISO country codes
	"nl": "Europe/Amsterdam",
	"de": "Europe/Berlin",
	"be": "Europe/Brussels",
	"fr": "Europe/Paris",
	"it": "Europe/Rome",
	"es": "Europe/Madrid",
	"gb": "Europe/London",
	"uk": "Europe/London",
	"ie": "Europe/Dublin",
	"se": "Europe/Stockholm",
	"no": "Europe/Oslo",
	"dk": "Europe/Copenhagen",
	"fi": "Europe/Helsinki",
	"jp": "Asia/Tokyo",
	"kr": "Asia/Seoul",
	"in": "Asia/Kolkata",
	"sg": "Asia/Singapore",
	"nz": "Pacific/Auckland",
}

// lowercase words inside IANA names, e.g. Port_of_Spain, Dar_es_Salaam
var particles = map[string]bool{
	"of": true, "es": true, "au": true, "de": true, "la": true, "du": true,
}

// Normalize resolves input to a canonical zone name. "Local" and "UTC" are
// accepted in any case. IANA names are accepted with sloppy capitalization
// and spaces for underscores, and a small alias table covers common
// abbreviations, cities and country codes.
func Normalize(input string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(input), "\"'")
	if trimmed == "" {
		return "", errors.Wrap(errors.ErrUnknownTimezone, "timezone cannot be empty")
	}

	lower := strings.ToLower(trimmed)
	switch lower {
	case "local":
		return Local, nil
	case "utc", "z", "gmt":
		return "UTC", nil
	}

	if isValid(trimmed) {
		return trimmed, nil
	}
	if candidate := canonicalize(trimmed); isValid(candidate) {
		return candidate, nil
	}
	if tz, ok := aliases[lower]; ok {
		return tz, nil
	}

	return "", errors.WithHint(
		errors.Wrapf(errors.ErrUnknownTimezone, "%q", input),
		"use an IANA name such as Europe/Amsterdam, or Local")
}

// Resolve is Normalize followed by loading the location
func Resolve(input string) (*time.Location, error) {
	name, err := Normalize(input)
	if err != nil {
		return nil, err
	}
	if name == Local {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// canonicalize title-cases each word of each path segment:
// "america/new york" -> "America/New_York"
func canonicalize(tz string) string {
	parts := strings.Split(strings.ReplaceAll(tz, " ", "_"), "/")
	for i, part := range parts {
		parts[i] = titleSegment(part)
	}
	return strings.Join(parts, "/")
}

func titleSegment(s string) string {
	lower := strings.ToLower(s)
	var b strings.Builder
	start := 0
	for i := 0; i <= len(lower); i++ {
		if i < len(lower) && lower[i] != '_' && lower[i] != '-' {
			continue
		}
		word := lower[start:i]
		switch {
		case start > 0 && particles[word]:
			b.WriteString(word)
		case word != "":
			b.WriteString(strings.ToUpper(word[:1]) + word[1:])
		}
		if i < len(lower) {
			b.WriteByte(lower[i])
		}
		start = i + 1
	}
	return b.String()
}

func isValid(tz string) bool {
	if tz == "" || strings.EqualFold(tz, Local) {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}
