package model

import "errors"

// MaxLevel is the level cap. XP keeps accumulating at the cap but no further levels are granted.
const MaxLevel = 100

var ErrNegativeXP = errors.New("xp gain must not be negative")

// XPToNext returns the XP needed to advance from level to level+1.
func XPToNext(level int) int64 {
	if level < 1 {
		level = 1
	}
	return int64(level) * 100
}

// ApplyXP adds gained XP to a profile's level/xp pair and rolls over levels.
// xp is the progress inside the current level.
func ApplyXP(level int, xp, gained int64) (newLevel int, newXP int64, levelsGained int, err error) {
	if gained < 0 {
		return level, xp, 0, ErrNegativeXP
	}
	if level < 1 {
		level = 1
	}
	newLevel, newXP = level, xp+gained
	for newLevel < MaxLevel && newXP >= XPToNext(newLevel) {
		newXP -= XPToNext(newLevel)
		newLevel++
	}
	return newLevel, newXP, newLevel - level, nil
}

// LevelProgress returns the percentage (0-100) of the way to the next level.
func LevelProgress(level int, xp int64) float64 {
	if level >= MaxLevel {
		return 100
	}
	p := float64(xp) / float64(XPToNext(level)) * 100
	if p > 100 {
		return 100
	}
	return p
}
