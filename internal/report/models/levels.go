package models

import (
	dErrors "carelog/pkg/domain-errors"
)

// Level is a resident's activity-level classification, derived from how many
// activity records they have in the recent window.
type Level string

const (
	LevelInactive Level = "inactive"
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
	LevelOnHiatus Level = "on_hiatus"
)

// Levels is the canonical ordering. Percentage normalization breaks ties in
// this order, so it is part of the contract, not a presentation detail.
var Levels = []Level{LevelInactive, LevelLow, LevelModerate, LevelHigh, LevelOnHiatus}

const (
	lowThreshold      = 1
	moderateThreshold = 5
	highThreshold     = 10
)

// Classify maps a recent-activity count onto a level. The bands are
// contiguous: 0 is inactive, 1-4 low, 5-9 moderate, 10 and up high.
func Classify(count int) (Level, error) {
	switch {
	case count < 0:
		return "", dErrors.New(dErrors.CodeInvalidInput, "activity count cannot be negative")
	case count < lowThreshold:
		return LevelInactive, nil
	case count < moderateThreshold:
		return LevelLow, nil
	case count < highThreshold:
		return LevelModerate, nil
	default:
		return LevelHigh, nil
	}
}

// ClassifyResident applies the hiatus override: a resident marked on hiatus
// is reported as on_hiatus no matter how many records they have.
func ClassifyResident(onHiatus bool, count int) (Level, error) {
	if onHiatus {
		return LevelOnHiatus, nil
	}
	return Classify(count)
}
