package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("resource conflict")
	ErrNoMetrics        = errors.New("no daily metrics in window")
	ErrWeekMismatch     = errors.New("program week changed since decision was computed")
	ErrMaxWeekReached   = errors.New("already at final program week")
	ErrAtFirstWeek      = errors.New("cannot reset below week 1")
	ErrExtensionCap     = errors.New("weekly extension cap reached")
	ErrTargetBelowFloor = errors.New("target modification below safety floor")
	ErrInvalidInput     = errors.New("invalid input")
)
