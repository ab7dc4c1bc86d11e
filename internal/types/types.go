package types

// UnitID identifies a unit (token) in the scene.
type UnitID string

// ObstacleID identifies a temporary blocking geometry created during a tick.
type ObstacleID string
