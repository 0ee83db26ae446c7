package console

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned when a key is registered twice.
var ErrDuplicateKey = errors.New("duplicate command key")

// ActionKind tags the operation bound to a command key.
type ActionKind int

const (
	ActionRun ActionKind = iota
	ActionSelectBash
	ActionSelectNu
	ActionBuildDebug
	ActionBuildProduction
	ActionToggleMemcheck
	ActionUnitDebug
	ActionUnitProduction
	ActionFetchEsctest
	ActionRunEsctest
	ActionQuit
)

// Command keys. These are typed by the operator and must stay stable.
const (
	KeyRun             = "r"
	KeyBash            = "bash"
	KeyNu              = "nu"
	KeyBuildDebug      = "bd"
	KeyBuildProduction = "bp"
	KeyMemcheck        = "m"
	KeyUnitDebug       = "ud"
	KeyUnitProduction  = "up"
	KeyFetchEsctest    = "get esctest"
	KeyRunEsctest      = "esctest"
	KeyQuit            = "q"
)

// Entry is one menu line.
type Entry struct {
	Key         string
	Description string
	Action      ActionKind
}

// Registry is an ordered key → entry table. Registration order is menu order.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: map[string]int{}}
}

// Register adds an entry. Registering a key twice fails.
func (r *Registry) Register(key, description string, action ActionKind) error {
	if _, ok := r.index[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	r.index[key] = len(r.entries)
	r.entries = append(r.entries, Entry{Key: key, Description: description, Action: action})
	return nil
}

// MustRegister is Register for static tables; it panics on a duplicate key.
func (r *Registry) MustRegister(key, description string, action ActionKind) {
	if err := r.Register(key, description, action); err != nil {
		panic(err)
	}
}

// Lookup finds the entry for key.
func (r *Registry) Lookup(key string) (Entry, bool) {
	i, ok := r.index[key]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns the entries in menu order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// DefaultRegistry holds the console's command table.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(KeyRun, "Run min-terminal", ActionRun)
	r.MustRegister(KeyBash, "Use bash when running min-terminal", ActionSelectBash)
	r.MustRegister(KeyNu, "Use nu when running min-terminal", ActionSelectNu)
	r.MustRegister(KeyBuildDebug, "Build min-terminal with debug settings", ActionBuildDebug)
	r.MustRegister(KeyBuildProduction, "Build min-terminal with production settings", ActionBuildProduction)
	r.MustRegister(KeyMemcheck, "Toggle running with memcheck", ActionToggleMemcheck)
	r.MustRegister(KeyUnitDebug, "Run unit tests with debug settings", ActionUnitDebug)
	r.MustRegister(KeyUnitProduction, "Run unit tests with production settings", ActionUnitProduction)
	r.MustRegister(KeyFetchEsctest, "Fetch the esctest conformance suite", ActionFetchEsctest)
	r.MustRegister(KeyRunEsctest, "Run esctest inside min-terminal", ActionRunEsctest)
	r.MustRegister(KeyQuit, "Quit", ActionQuit)
	return r
}
