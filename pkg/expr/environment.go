package expr

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"
)

// Environment maps variable names to boolean values. Names that were never assigned evaluate to false.
// Environment is not safe for concurrent use; callers sharing one between goroutines must synchronize access.
type Environment struct {
	variables *orderedmap.OrderedMap[string, bool]
}

func NewEnvironment() *Environment {
	return &Environment{variables: orderedmap.NewOrderedMap[string, bool]()}
}

// Lookup returns the value assigned to the name or false if the name was never assigned.
func (e *Environment) Lookup(name string) bool {
	v, ok := e.variables.Get(name)
	if !ok {
		return false
	}
	return v
}

// Assign stores the value under the name, overwriting the previous value.
func (e *Environment) Assign(name string, value bool) {
	e.variables.Set(name, value)
}

func (e *Environment) Len() int {
	return e.variables.Len()
}

// Names returns assigned names in order of their first assignment.
func (e *Environment) Names() []string {
	names := make([]string, 0, e.variables.Len())
	for el := e.variables.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

var (
	sharedOnce        sync.Once
	sharedEnvironment *Environment
)

// SharedEnvironment returns the process-wide environment. The instance is created on the first call
// and the same instance is returned for the rest of the process lifetime; it is never reset.
// Prefer creating an Environment with NewEnvironment and passing it explicitly.
func SharedEnvironment() *Environment {
	sharedOnce.Do(func() {
		sharedEnvironment = NewEnvironment()
	})
	return sharedEnvironment
}
