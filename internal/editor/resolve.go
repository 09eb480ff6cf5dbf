package editor

import "errors"

// ErrNotConfigured is returned when none of Keys is set.
var ErrNotConfigured = errors.New("cannot resolve editor: set CARGO_EDITOR, VISUAL or EDITOR")

// Keys lists the variables consulted by Resolve, highest priority first.
var Keys = []string{"CARGO_EDITOR", "VISUAL", "EDITOR"}

// LookupFunc reports the value of a configuration key and whether it is set.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Resolve returns the value of the first key in Keys that is set.
// A key set to the empty string counts as set and its empty value is returned.
func Resolve(lookup LookupFunc) (string, error) {
	for _, key := range Keys {
		if v, ok := lookup(key); ok {
			return v, nil
		}
	}
	return "", ErrNotConfigured
}
