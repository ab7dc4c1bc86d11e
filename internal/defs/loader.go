// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Library is an ordered archetype table with lookup by name.
type Library struct {
	archetypes []AttackDescriptor
	byName     map[string]int
}

type libraryFile struct {
	Archetypes []AttackDescriptor `yaml:"archetypes"`
}

// NewLibrary validates the descriptors and keeps them in the given order.
func NewLibrary(archetypes []AttackDescriptor) (*Library, error) {
	lib := &Library{
		archetypes: make([]AttackDescriptor, 0, len(archetypes)),
		byName:     make(map[string]int, len(archetypes)),
	}
	for _, def := range archetypes {
		if err := validate(def); err != nil {
			return nil, err
		}
		if _, dup := lib.byName[def.Name]; dup {
			return nil, fmt.Errorf("duplicate archetype %q", def.Name)
		}
		lib.byName[def.Name] = len(lib.archetypes)
		lib.archetypes = append(lib.archetypes, def)
	}
	return lib, nil
}

// DefaultLibrary returns the built-in archetype table.
func DefaultLibrary() *Library {
	lib, err := NewLibrary(DefaultArchetypes())
	if err != nil {
		panic(err)
	}
	return lib
}

// LoadArchetypes reads an archetype table from a YAML file.
func LoadArchetypes(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archetype definitions file: %w", err)
	}

	var lf libraryFile
	if err := yaml.Unmarshal(file, &lf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal archetype definitions: %w", err)
	}
	return NewLibrary(lf.Archetypes)
}

// Ordered returns the descriptors in evaluation order.
func (l *Library) Ordered() []AttackDescriptor {
	out := make([]AttackDescriptor, len(l.archetypes))
	copy(out, l.archetypes)
	return out
}

// Lookup finds the descriptor for an archetype name.
func (l *Library) Lookup(name string) (AttackDescriptor, bool) {
	i, ok := l.byName[name]
	if !ok {
		return AttackDescriptor{}, false
	}
	return l.archetypes[i], true
}

func (l *Library) Len() int {
	return len(l.archetypes)
}

func validate(def AttackDescriptor) error {
	if def.Name == "" {
		return errors.New("archetype without a name")
	}
	if !def.Behavior.Valid() {
		return fmt.Errorf("archetype %q: unknown behavior %q", def.Name, def.Behavior)
	}
	if def.Range < 0 || def.MinRange < 0 || def.Damage < 0 || def.Pushback < 0 {
		return fmt.Errorf("archetype %q: negative range, damage or pushback", def.Name)
	}
	if def.MinRange > def.Range {
		return fmt.Errorf("archetype %q: min_range %d exceeds range %d", def.Name, def.MinRange, def.Range)
	}
	if def.Behavior == BehaviorHybrid {
		if def.Ranged == nil {
			return fmt.Errorf("archetype %q: hybrid behavior needs a ranged variant", def.Name)
		}
		if def.Ranged.Behavior != BehaviorStrike {
			return fmt.Errorf("archetype %q: ranged variant must be a strike", def.Name)
		}
		ranged := *def.Ranged
		if ranged.Name == "" {
			ranged.Name = def.Name
		}
		return validate(ranged)
	}
	return nil
}
