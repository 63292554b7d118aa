package model

import "time"

// RollID uniquely identifies a recorded die roll
type RollID string

// Roll is a single recorded result of rolling a die
type Roll struct {
	ID       RollID
	Sides    int
	Value    int
	RolledAt time.Time
}
