package entity

import (
	"maps"
	"slices"
)

// Lens restricts a search to a set of domains and URLs.
type Lens struct {
	Name    string   `yaml:"name"`
	Domains []string `yaml:"domains"`
	URLs    []string `yaml:"urls"`
}

// LensRegistry maps lens names to their definitions. It is populated by the
// lens loader after startup and may be written to directly.
type LensRegistry map[string]Lens

func NewLensRegistry() LensRegistry {
	return make(LensRegistry)
}

// Register adds l under l.Name, replacing any lens with the same name.
func (r LensRegistry) Register(l Lens) {
	r[l.Name] = l
}

func (r LensRegistry) Get(name string) (Lens, bool) {
	l, ok := r[name]
	return l, ok
}

func (r LensRegistry) Remove(name string) {
	delete(r, name)
}

func (r LensRegistry) Len() int {
	return len(r)
}

// Names returns the registered lens names in sorted order.
func (r LensRegistry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}
