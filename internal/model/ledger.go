package model

import "time"

// Ledger reasons.
const (
	LedgerPurchase      = "purchase"
	LedgerMissionReward = "mission_reward"
	LedgerSignupBonus   = "signup_bonus"
)

// LedgerEntry records one gold movement on a profile. Delta is negative for spends.
type LedgerEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Delta     int64     `json:"delta"`
	Reason    string    `json:"reason"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
