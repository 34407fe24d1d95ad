package demo

import (
	"sort"
	"strings"

	"github.com/vango-dev/jst/internal/errors"
	"github.com/vango-dev/jst/pkg/jst"
)

// Demo is a runnable sample application.
type Demo interface {
	// Title is the page title.
	Title() string

	// Component returns the root component.
	Component() *jst.Component

	// Tick applies the next scripted change and refreshes what it touched.
	// It returns a short description of the change.
	Tick() (string, error)
}

// Factory builds a demo on an engine.
type Factory func(e *jst.Engine) Demo

var registry = map[string]Factory{
	"todo":  func(e *jst.Engine) Demo { return NewTodo(e, "ToDos by jst") },
	"balls": func(e *jst.Engine) Demo { return NewBalls(e, 5) },
}

// Lookup returns the factory of the named demo.
func Lookup(name string) (Factory, error) {
	f, ok := registry[name]
	if !ok {
		return nil, errors.New("J080").
			WithDetailf("no demo named %q", name).
			WithSuggestion("Available demos: " + strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names returns the demo names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
