// internal/defs/archetypes.go
package defs

import "time"

// Behavior is the closed set of attack behaviors an archetype can run.
type Behavior string

const (
	BehaviorBuff   Behavior = "buff"   // marks nearby friendlies with a damage buff
	BehaviorStrike Behavior = "strike" // cost-first targets, optionally several per cast
	BehaviorDuel   Behavior = "duel"   // lunge at the single highest-hp target
	BehaviorArea   Behavior = "area"   // blast the best-scoring reachable cell
	BehaviorHybrid Behavior = "hybrid" // melee or ranged strike depending on who is close
)

// Valid reports whether b is one of the known behaviors.
func (b Behavior) Valid() bool {
	switch b {
	case BehaviorBuff, BehaviorStrike, BehaviorDuel, BehaviorArea, BehaviorHybrid:
		return true
	}
	return false
}

// AttackDescriptor holds the static data for one archetype.
type AttackDescriptor struct {
	Name        string            `yaml:"name"`
	Behavior    Behavior          `yaml:"behavior"`
	Range       int               `yaml:"range"`
	Damage      int               `yaml:"damage"`
	Animation   string            `yaml:"animation"`
	Targets     int               `yaml:"targets,omitempty"` // simultaneous targets per cast, 0 means 1
	MinRange    int               `yaml:"min_range,omitempty"`
	OnePerCell  bool              `yaml:"one_per_cell,omitempty"`
	Pushback    int               `yaml:"pushback,omitempty"` // cells pushed toward the entrance
	AttackDelay time.Duration     `yaml:"attack_delay,omitempty"`
	IgnoreSight bool              `yaml:"ignore_sight,omitempty"`
	BlastRadius int               `yaml:"blast_radius,omitempty"`
	Ranged      *AttackDescriptor `yaml:"ranged,omitempty"` // hybrid only
}

// TargetCount returns how many targets one cast may hit.
func (d AttackDescriptor) TargetCount() int {
	if d.Targets <= 0 {
		return 1
	}
	return d.Targets
}

// DefaultArchetypes is the archetype table in evaluation order. The buffer comes first so
// every later archetype in the same phase sees its buff.
func DefaultArchetypes() []AttackDescriptor {
	return []AttackDescriptor{
		{
			Name:        "Bennikkt",
			Behavior:    BehaviorBuff,
			Range:       2,
			Animation:   "jb2a.bless.400px.intro.blue",
			IgnoreSight: true,
		},
		{
			Name:      "Dagor",
			Behavior:  BehaviorDuel,
			Range:     6,
			Damage:    25,
			Animation: "jb2a.rapier.melee.01.white",
		},
		{
			Name:      "Thug",
			Behavior:  BehaviorStrike,
			Range:     1,
			Damage:    12,
			Animation: "jb2a.mace.melee.01.white",
		},
		{
			Name:      "Guard",
			Behavior:  BehaviorStrike,
			Range:     5,
			Damage:    8,
			MinRange:  4,
			Animation: "jb2a.bolt.physical.white",
		},
		{
			Name:        "Bugbear",
			Behavior:    BehaviorArea,
			Range:       3,
			Damage:      5,
			MinRange:    2,
			BlastRadius: 1,
			Animation:   "jb2a.boulder.toss",
		},
		{
			Name:        "Kethis",
			Behavior:    BehaviorHybrid,
			Range:       1,
			Damage:      20,
			Targets:     2,
			OnePerCell:  true,
			AttackDelay: 1250 * time.Millisecond,
			Animation:   "jb2a.greatsword.melee.fire.black",
			Ranged: &AttackDescriptor{
				Name:        "Kethis",
				Behavior:    BehaviorStrike,
				Range:       9,
				Damage:      12,
				Targets:     2,
				OnePerCell:  true,
				MinRange:    2,
				AttackDelay: 1100 * time.Millisecond,
				Animation:   "jb2a.eldritch_blast.purple",
			},
		},
		{
			Name:       "Goblin",
			Behavior:   BehaviorStrike,
			Range:      3,
			Damage:     2,
			Targets:    2,
			OnePerCell: true,
			Animation:  "jb2a.arrow.physical.white.01",
		},
		{
			Name:        "Bartok",
			Behavior:    BehaviorStrike,
			Range:       1,
			Damage:      15,
			Targets:     2,
			OnePerCell:  true,
			Pushback:    2,
			AttackDelay: 1650 * time.Millisecond,
			Animation:   "jb2a.greataxe.melee.fire.blue",
		},
	}
}
