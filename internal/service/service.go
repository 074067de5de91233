// Package service implements the game's use cases on top of the repositories.
package service

import (
	"errors"

	"github.com/google/uuid"

	"pokedex/internal/pokedex"
)

var (
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrInvalidUsername  = errors.New("username must be 3-20 letters, digits or underscores")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrSpeciesNotFound  = pokedex.ErrSpeciesNotFound
	ErrInvalidSort      = pokedex.ErrInvalidSort
	ErrInvalidNumber    = errors.New("national number out of range")
	ErrInvalidCategory  = errors.New("invalid item category")
	ErrItemNotFound     = errors.New("shop item not found")
	ErrAlreadyOwned     = errors.New("item already owned")
	ErrInsufficientGold = errors.New("not enough gold")
	ErrNotOwned         = errors.New("item not owned")
	ErrImageUnavailable = errors.New("item artwork unavailable")

	ErrInvalidMissionKind    = errors.New("invalid mission kind")
	ErrMissionNotFound       = errors.New("mission not found")
	ErrMissionNotCompleted   = errors.New("mission not completed")
	ErrMissionAlreadyClaimed = errors.New("mission reward already claimed")

	ErrTeamNotFound    = errors.New("team not found")
	ErrInvalidTeamName = errors.New("team name must be 1-30 characters")
	ErrInvalidTeamSize = errors.New("a team has 1 to 6 members")
	ErrTeamLimit       = errors.New("team limit reached")
)

// validID reports whether id is a UUID. IDs that are not UUIDs cannot exist in storage.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
