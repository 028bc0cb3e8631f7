package domain

import "strconv"

// Level is the severity of an entry. Levels are ordered by value.
type Level int

const (
	// LevelDetail is for anything that does not indicate a problem.
	LevelDetail Level = 0
	// LevelWarning is for minor issues.
	LevelWarning Level = 1
	// LevelError is for when something went very wrong.
	LevelError Level = 2
)

type levelName struct {
	name  string
	level Level
}

// ordered by value
var levelNames = [...]levelName{
	{"Detail", LevelDetail},
	{"Warning", LevelWarning},
	{"Error", LevelError},
}

var (
	levelsByName  = make(map[string]Level, len(levelNames))
	levelsByValue = make(map[Level]string, len(levelNames))
)

func init() {
	for _, ln := range levelNames {
		levelsByName[ln.name] = ln.level
		levelsByValue[ln.level] = ln.name
	}
}

func Levels() []Level {
	out := make([]Level, 0, len(levelNames))
	for _, ln := range levelNames {
		out = append(out, ln.level)
	}
	return out
}

func IsValidName(name string) bool {
	_, ok := levelsByName[name]
	return ok
}

func IsValidValue(v Level) bool {
	_, ok := levelsByValue[v]
	return ok
}

func ValueOf(name string) (Level, bool) {
	l, ok := levelsByName[name]
	return l, ok
}

func NameOf(v Level) (string, bool) {
	name, ok := levelsByValue[v]
	return name, ok
}

// ParseLevel accepts either a level name or its numeric value.
func ParseLevel(s string) (Level, bool) {
	if l, ok := ValueOf(s); ok {
		return l, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || !IsValidValue(Level(n)) {
		return 0, false
	}
	return Level(n), true
}

func (l Level) IsValid() bool {
	return IsValidValue(l)
}

func (l Level) String() string {
	if name, ok := NameOf(l); ok {
		return name
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}
