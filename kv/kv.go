// Package kv reads and writes flat key=value text, one pair per line.
//
// The format tolerates human editing: blank lines are skipped, lines whose
// first non-whitespace character is ';', '#', or '/' are comments, and an
// optional inline comment marker strips trailing commentary from a line
// before it is split. Values may contain '=' since only the first occurrence
// separates the key.
package kv

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnsupportedValue indicates a composite value was offered to the flat
// KV format. Maps, slices, and arrays cannot be represented and are
// rejected at encode time.
var ErrUnsupportedValue = errors.New("value not representable in key=value text")

// commentPrefixes are the characters that start a full-line comment.
var commentPrefixes = ";#/"

// Unmarshal parses key=value text into a map. Lines without a separator,
// blank lines, and comment lines produce no entry. When inlineComment is
// non-empty, everything from its first occurrence to the end of the line is
// discarded before the line is split on the first '='. Keys and values are
// trimmed of surrounding whitespace.
func Unmarshal(text string, inlineComment string) map[string]string {
	out := make(map[string]string)

	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.ContainsRune(commentPrefixes, rune(line[0])) {
			continue
		}
		if inlineComment != "" {
			if i := strings.Index(line, inlineComment); i >= 0 {
				line = strings.TrimSpace(line[:i])
			}
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			// Tolerated, not an error: separator-less lines are skipped.
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return out
}

// Marshal serializes a flat map as key=value lines joined by '\n', in
// sorted key order so output is deterministic. When spaced is true the
// separator is written as " = ". Map, slice, and array values return
// ErrUnsupportedValue; all other values are formatted with fmt.
func Marshal(data map[string]any, spaced bool) (string, error) {
	sep := "="
	if spaced {
		sep = " = "
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		value := data[key]
		switch reflect.ValueOf(value).Kind() {
		case reflect.Map, reflect.Slice, reflect.Array:
			return "", errors.Wrapf(ErrUnsupportedValue, "key %q has %T value", key, value)
		}
		fmt.Fprintf(&b, "%s%s%v\n", key, sep, value)
	}

	return strings.TrimSpace(b.String()), nil
}
