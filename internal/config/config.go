// internal/config/config.go
package config

import "time"

const (
	EntranceName = "Entrance"
	ExitName     = "Exit"

	CellSize    = 100.0 // pixels per grid cell
	StepCost    = 5     // movement cost of one grid step
	FeetPerStep = 5

	BuffDamageCap = 5 // flat bonus cap for buffed units

	AttackPacing         = 250 * time.Millisecond // delay between launching friendly attacks
	MaxAttackTime        = 2 * time.Second        // launch budget spread across all friendlies
	DefaultAttackDelay   = 250 * time.Millisecond // delay between targets within one attack
	MoveStepPacing       = 500 * time.Millisecond
	MaxMoveTime          = 1 * time.Second
	WavePause            = 1 * time.Second
	EffectDuration       = 500 * time.Millisecond // nominal length of one attack effect
	MaxConcurrentAttacks = 16

	DefaultMoveRate = 20 // feet per turn when a unit has none
)

// ObstacleSettings selects what the friendly walls block.
type ObstacleSettings struct {
	BlocksMovement bool `yaml:"blocks_movement"`
	BlocksSight    bool `yaml:"blocks_sight"`
}

// Settings are the tunables of the tick engine. Pacing durations are cosmetic and
// may be zero.
type Settings struct {
	StepCost      int `yaml:"step_cost"`
	BuffDamageCap int `yaml:"buff_damage_cap"`

	AttackPacing         time.Duration `yaml:"attack_pacing"`
	MaxAttackTime        time.Duration `yaml:"max_attack_time"`
	TargetDelay          time.Duration `yaml:"target_delay"` // between targets of one cast; zero disables archetype delays too
	MoveStepPacing       time.Duration `yaml:"move_step_pacing"`
	MaxMoveTime          time.Duration `yaml:"max_move_time"`
	WavePause            time.Duration `yaml:"wave_pause"`
	MaxConcurrentAttacks int           `yaml:"max_concurrent_attacks"`
	PlayAnimations       bool          `yaml:"play_animations"`
	EffectDuration       time.Duration `yaml:"effect_duration"`

	HostileMove        bool `yaml:"hostile_move"`
	FriendlyAttacks    bool `yaml:"friendly_attacks"`
	DealDamage         bool `yaml:"deal_damage"`
	DeleteDeadHostiles bool `yaml:"delete_dead_hostiles"`

	Obstacles ObstacleSettings `yaml:"obstacles"`
}

// Default returns the settings the engine ships with.
func Default() Settings {
	return Settings{
		StepCost:             StepCost,
		BuffDamageCap:        BuffDamageCap,
		AttackPacing:         AttackPacing,
		MaxAttackTime:        MaxAttackTime,
		TargetDelay:          DefaultAttackDelay,
		MoveStepPacing:       MoveStepPacing,
		MaxMoveTime:          MaxMoveTime,
		WavePause:            WavePause,
		MaxConcurrentAttacks: MaxConcurrentAttacks,
		PlayAnimations:       true,
		EffectDuration:       EffectDuration,
		HostileMove:          false,
		FriendlyAttacks:      true,
		DealDamage:           true,
		DeleteDeadHostiles:   true,
		Obstacles: ObstacleSettings{
			BlocksMovement: true,
			BlocksSight:    false,
		},
	}
}

// Instant returns Default with every pacing delay removed.
func Instant() Settings {
	s := Default()
	s.AttackPacing = 0
	s.MaxAttackTime = 0
	s.TargetDelay = 0
	s.MoveStepPacing = 0
	s.MaxMoveTime = 0
	s.WavePause = 0
	s.PlayAnimations = false
	s.EffectDuration = 0
	return s
}

// AttackLaunchDelay is the pause between launching two friendly attacks.
func (s Settings) AttackLaunchDelay(friendlies int) time.Duration {
	d := s.AttackPacing
	if friendlies > 0 && s.MaxAttackTime/time.Duration(friendlies) < d {
		d = s.MaxAttackTime / time.Duration(friendlies)
	}
	return d
}

// TargetPause is the pause between two targets of one cast. An archetype delay replaces
// the default unless target pacing is disabled.
func (s Settings) TargetPause(archetype time.Duration) time.Duration {
	if s.TargetDelay <= 0 {
		return 0
	}
	if archetype > 0 {
		return archetype
	}
	return s.TargetDelay
}

// MoveStepDelay is the pause between two steps of one hostile that moves steps cells.
func (s Settings) MoveStepDelay(hostiles, steps int) time.Duration {
	d := s.MoveStepPacing
	if hostiles > 0 && s.MaxMoveTime/time.Duration(hostiles) < d {
		d = s.MaxMoveTime / time.Duration(hostiles)
	}
	if steps > 0 {
		d /= time.Duration(steps)
	}
	return d
}
