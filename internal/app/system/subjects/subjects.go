// internal/app/system/subjects/subjects.go
package subjects

// Subject describes one course subject the bot serves.
//
// Exactly one of two organizations applies:
//   - roster subjects (Informatics) split materials by student group;
//   - taxonomy subjects (Architecture, МДК) split materials by type.
//
// A subject with neither roster nor taxonomy (ИТ) stores everything under
// the "all" group with DefaultType.
type Subject struct {
	Key    string   // short identifier used in action tokens and sessions
	Name   string   // display name stored on materials
	Groups []string // student group roster, empty unless roster subject
	Types  []string // material type taxonomy, empty unless taxonomy subject
}

// DefaultType is the material type assigned when a subject has no taxonomy.
const DefaultType = "📚 Лекции"

// registry is the fixed subject set, in menu order.
var registry = []Subject{
	{
		Key:    "информатика",
		Name:   "Информатика",
		Groups: []string{"11", "12", "13", "14", "15", "16", "17"},
	},
	{
		Key:   "архитектура",
		Name:  "Архитектура",
		Types: []string{"📚 Лекции", "📝 Практические работы"},
	},
	{
		Key:  "ит",
		Name: "ИТ",
	},
	{
		Key:   "мдк",
		Name:  "МДК 05.01",
		Types: []string{"📚 Лекции", "📝 Практические работы"},
	},
}

// All returns every subject in menu order.
func All() []Subject {
	return registry
}

// Get looks up a subject by key.
func Get(key string) (Subject, bool) {
	for _, s := range registry {
		if s.Key == key {
			return s, true
		}
	}
	return Subject{}, false
}

// ByName looks up a subject by its display name, the form stored on
// materials.
func ByName(name string) (Subject, bool) {
	for _, s := range registry {
		if s.Name == name {
			return s, true
		}
	}
	return Subject{}, false
}

// HasRoster reports whether materials for this subject are split by group.
func (s Subject) HasRoster() bool {
	return len(s.Groups) > 0
}

// HasTypes reports whether materials for this subject are split by type.
func (s Subject) HasTypes() bool {
	return len(s.Types) > 0
}

// HasGroup reports whether g is one of the subject's roster groups.
func (s Subject) HasGroup(g string) bool {
	for _, have := range s.Groups {
		if have == g {
			return true
		}
	}
	return false
}

// TypeAt returns the material type at index i of the subject's taxonomy.
// Subjects without a taxonomy expose DefaultType at index 0, so token
// arguments stay small and stable either way.
func (s Subject) TypeAt(i int) (string, bool) {
	if !s.HasTypes() {
		if i == 0 {
			return DefaultType, true
		}
		return "", false
	}
	if i < 0 || i >= len(s.Types) {
		return "", false
	}
	return s.Types[i], true
}

// TypeIndex returns the taxonomy index for the given type label.
func (s Subject) TypeIndex(label string) int {
	for i, t := range s.Types {
		if t == label {
			return i
		}
	}
	return 0
}
