package gamedata

import "fmt"

// Registry holds loaded definitions of one kind and provides lookup by ID.
type Registry[T any] struct {
	byID map[string]*T
	all  []T
	kind string
}

// NewRegistry creates a registry from loaded definitions.
// id extracts the lookup key of a definition.
func NewRegistry[T any](kind string, defs []T, id func(*T) string) *Registry[T] {
	r := &Registry[T]{
		byID: make(map[string]*T, len(defs)),
		all:  defs,
		kind: kind,
	}
	for i := range defs {
		r.byID[id(&defs[i])] = &defs[i]
	}
	return r
}

// GetByID returns the definition with the given ID, or nil if not found.
func (r *Registry[T]) GetByID(id string) *T {
	return r.byID[id]
}

// Lookup returns the definition with the given ID or an error naming it.
func (r *Registry[T]) Lookup(id string) (*T, error) {
	def := r.byID[id]
	if def == nil {
		return nil, fmt.Errorf("unknown %s %q", r.kind, id)
	}
	return def, nil
}

// All returns all definitions.
func (r *Registry[T]) All() []T {
	return r.all
}

// Count returns the number of definitions in the registry.
func (r *Registry[T]) Count() int {
	return len(r.all)
}

// Library bundles every registry the game needs.
type Library struct {
	Heroes     *Registry[HeroDef]
	Enemies    *Registry[EnemyDef]
	Items      *Registry[ItemDef]
	Capacities *Registry[CapacityDef]
	Dungeons   *Registry[DungeonDef]
}

// LoadLibrary loads every embedded definition file.
func LoadLibrary() (*Library, error) {
	heroes, err := LoadHeroes()
	if err != nil {
		return nil, err
	}
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	capacities, err := LoadCapacities()
	if err != nil {
		return nil, err
	}
	dungeons, err := LoadDungeons()
	if err != nil {
		return nil, err
	}
	return &Library{
		Heroes:     NewRegistry("hero", heroes, func(d *HeroDef) string { return d.ID }),
		Enemies:    NewRegistry("enemy", enemies, func(d *EnemyDef) string { return d.ID }),
		Items:      NewRegistry("item", items, func(d *ItemDef) string { return d.ID }),
		Capacities: NewRegistry("capacity", capacities, func(d *CapacityDef) string { return d.ID }),
		Dungeons:   NewRegistry("dungeon", dungeons, func(d *DungeonDef) string { return d.ID }),
	}, nil
}

// MustLoadLibrary loads the library, panicking on error.
func MustLoadLibrary() *Library {
	lib, err := LoadLibrary()
	if err != nil {
		panic(err)
	}
	return lib
}
