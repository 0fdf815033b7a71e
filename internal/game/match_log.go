package game

import (
	"fmt"
	"strings"
)

// MatchLogEntry is one recorded event during a match.
type MatchLogEntry struct {
	Tick     int
	Ship     string  // "A", "B", or "--" for match-level events
	Category string  // move, fire, projectile, hit, match
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] A    move      blocked          toward (0,1)
func (e MatchLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-10s %-16s %s",
		e.Tick, e.Ship, e.Category, e.Key, e.Value)
}

// MatchLog collects structured events during a match. It is unbounded and
// machine-readable; the renderer never touches it. A nil MatchLog is valid
// and records nothing, so the match core can log unconditionally.
type MatchLog struct {
	entries []MatchLogEntry
	verbose bool
}

// NewMatchLog creates a MatchLog. If verbose is true, per-tick movement
// entries are also recorded (useful for detailed debugging).
func NewMatchLog(verbose bool) *MatchLog {
	return &MatchLog{verbose: verbose}
}

// Add records a new entry. Safe on a nil log.
func (ml *MatchLog) Add(tick int, ship, category, key, value string, numVal float64) {
	if ml == nil {
		return
	}
	ml.entries = append(ml.entries, MatchLogEntry{
		Tick:     tick,
		Ship:     ship,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (ml *MatchLog) AddVerbose(tick int, ship, category, key, value string, numVal float64) {
	if ml == nil || !ml.verbose {
		return
	}
	ml.Add(tick, ship, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (ml *MatchLog) Entries() []MatchLogEntry {
	if ml == nil {
		return nil
	}
	return ml.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (ml *MatchLog) Filter(category, key string) []MatchLogEntry {
	var out []MatchLogEntry
	for _, e := range ml.Entries() {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterShip returns entries for a specific ship label.
func (ml *MatchLog) FilterShip(label string) []MatchLogEntry {
	var out []MatchLogEntry
	for _, e := range ml.Entries() {
		if e.Ship == label {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (ml *MatchLog) CountCategory(category, key string) int {
	return len(ml.Filter(category, key))
}

// CountShip returns how many of a ship's entries match category and key.
func (ml *MatchLog) CountShip(label, category, key string) int {
	n := 0
	for _, e := range ml.FilterShip(label) {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		n++
	}
	return n
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (ml *MatchLog) LastOf(category, key string) (MatchLogEntry, bool) {
	entries := ml.Filter(category, key)
	if len(entries) == 0 {
		return MatchLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and
// value substring.
func (ml *MatchLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range ml.Entries() {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (ml *MatchLog) Format() string {
	var sb strings.Builder
	for _, e := range ml.Entries() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
