package model

import "time"

// MaxTeamSize is the number of slots in a battle team.
const MaxTeamSize = 6

// Team is a named battle team of up to six species, referenced by national number.
type Team struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Members   []int     `json:"members"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
