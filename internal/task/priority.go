package task

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Level is a canonical priority rank. Levels order low < medium < high,
// and the integer values double as the accepted numeric ranks: 1 is low,
// 2 is medium, 3 is high. A higher rank means a higher priority.
type Level int

const (
	LevelLow Level = iota + 1
	LevelMedium
	LevelHigh
)

// DefaultLevel is assigned to tasks added without an explicit priority.
const DefaultLevel = LevelMedium

var levelNames = map[Level]string{
	LevelLow:    "low",
	LevelMedium: "medium",
	LevelHigh:   "high",
}

// ParseLevel maps a priority token to its Level. Level names are matched
// case-insensitively ("low", "Medium", "HIGH"), and the numeric ranks are
// accepted in string form ("1".."3"). Anything else is rejected with an
// error that unwraps to ErrInvalidArgument.
func ParseLevel(tok string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "low":
		return LevelLow, nil
	case "medium":
		return LevelMedium, nil
	case "high":
		return LevelHigh, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(tok)); err == nil {
		return LevelFromRank(n)
	}
	return 0, &PriorityError{Value: tok}
}

// LevelFromRank maps a numeric rank to its Level. Ranks outside 1..3 are
// rejected.
func LevelFromRank(n int) (Level, error) {
	l := Level(n)
	if !l.valid() {
		return 0, &PriorityError{Value: strconv.Itoa(n)}
	}
	return l, nil
}

func (l Level) valid() bool {
	return l >= LevelLow && l <= LevelHigh
}

// Rank returns the numeric rank of the level.
func (l Level) Rank() int { return int(l) }

// String returns the canonical lowercase name: "low", "medium" or "high".
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Display returns the title-cased name used in listings: "Low", "Medium"
// or "High".
func (l Level) Display() string {
	return cases.Title(language.English).String(l.String())
}

// MarshalJSON writes the canonical lowercase name.
func (l Level) MarshalJSON() ([]byte, error) {
	if !l.valid() {
		return nil, &PriorityError{Value: strconv.Itoa(int(l))}
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts a level name or a numeric rank, the two spellings
// the state file admits.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, perr := ParseLevel(s)
		if perr != nil {
			return perr
		}
		*l = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		parsed, perr := LevelFromRank(n)
		if perr != nil {
			return perr
		}
		*l = parsed
		return nil
	}
	return &PriorityError{Value: string(data)}
}
