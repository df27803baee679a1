// Package jsonutil wraps standard JSON serialization behind a pair of small
// typed helpers.
package jsonutil

import "encoding/json"

// GetJSON serializes v to its canonical JSON text using the standard library
// serialization rules.
func GetJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromJSON parses text into a value of the target shape T, making the
// methods declared on T available on the parsed data. The decoder error is
// surfaced unchanged when text is not valid JSON.
func FromJSON[T any](text string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
