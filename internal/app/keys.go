package app

import "weekendly/internal/keys"

// KeyMap aliases keys.KeyMap so the shell can hand one binding set to
// every view it constructs without each call site importing keys.
type KeyMap = keys.KeyMap

// DefaultKeyMap delegates to keys.DefaultKeyMap.
func DefaultKeyMap() *KeyMap {
	return keys.DefaultKeyMap()
}
