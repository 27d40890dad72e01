// Package env interprets environment variables with sensible defaults, comparing keys case-insensitive.
package env

import (
	"os"
	"slices"
	"strings"
)

// lookup scans the environment for key, ignoring case.
func lookup(key string) (string, bool) {
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// Val returns the value of the environment variable key, or defaultVal when the
// variable is unset or blank. Keys are compared case-insensitive.
func Val(key string, defaultVal string) string {
	val, ok := lookup(key)
	if !ok {
		return defaultVal
	}
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values [Bool] reads as true, and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values [Bool] reads as false, and can be changed.
)

// BoolIf translates an environment variable to a boolean with the given translation map.
// Candidate strings are matched case-insensitive. The defaultVal is returned when the
// variable is unset, blank, or matches neither side of the translation.
//
// Leaving one side empty makes the other act as a whitelist.
func BoolIf(key string, defaultVal bool, translation map[bool][]string) bool {
	sval := strings.ToLower(Val(key, ""))
	if len(sval) == 0 || translation == nil {
		return defaultVal
	}
	matches := func(vals []string) bool {
		return slices.ContainsFunc(vals, func(v string) bool {
			return sval == strings.ToLower(v)
		})
	}
	if matches(translation[true]) {
		return true
	}
	if matches(translation[false]) {
		return false
	}
	return defaultVal
}

// Bool interprets an environment variable as a boolean using [DefaultTrue] and [DefaultFalse].
// The defaultVal is returned when the variable is unset, blank, or recognizably neither.
func Bool(key string, defaultVal bool) bool {
	return BoolIf(key, defaultVal, map[bool][]string{
		true:  DefaultTrue,
		false: DefaultFalse,
	})
}
