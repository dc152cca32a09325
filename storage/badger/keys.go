package badger

import "fmt"

// Key prefixes for different data types
const (
	settingsPrefix = "settings"
	historyName    = "history"
)

// makeSettingsKey generates a key for a named settings value.
// Format: prefix:name
func makeSettingsKey(name string) []byte {
	return []byte(fmt.Sprintf("%s:%s", settingsPrefix, name))
}
