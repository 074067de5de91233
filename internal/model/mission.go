package model

import "time"

// MissionKind identifies which game event advances a mission.
type MissionKind string

const (
	// MissionOwnPokemon tracks the absolute size of the Living Dex.
	MissionOwnPokemon MissionKind = "own_pokemon"
	MissionBuildTeam  MissionKind = "build_team"
	MissionPurchase   MissionKind = "purchase_item"
	MissionEquip      MissionKind = "equip_item"
)

// Valid reports whether k is a known mission kind.
func (k MissionKind) Valid() bool {
	switch k {
	case MissionOwnPokemon, MissionBuildTeam, MissionPurchase, MissionEquip:
		return true
	}
	return false
}

// Mission is a backend-defined achievement.
type Mission struct {
	ID          string      `json:"id"`
	Code        string      `json:"code"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Kind        MissionKind `json:"kind"`
	Target      int         `json:"target"`
	RewardGold  int64       `json:"reward_gold"`
	RewardXP    int64       `json:"reward_xp"`
}

// UserMission is a mission together with one user's progress on it.
type UserMission struct {
	Mission
	Progress    int        `json:"progress"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ClaimedAt   *time.Time `json:"claimed_at,omitempty"`
}

// Claimable reports whether the reward can be claimed now.
func (m UserMission) Claimable() bool {
	return m.Completed && m.ClaimedAt == nil
}

// ClampProgress bounds a progress value to [0, target].
func ClampProgress(v, target int) int {
	if v < 0 {
		return 0
	}
	if v > target {
		return target
	}
	return v
}
