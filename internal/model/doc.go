package model

// Package model defines domain data structures used across the app: the
// download request, quality options derived from engine formats, progress
// counters, and the form enablement state machine. Structures are plain
// values so the controller can copy them between goroutines.
