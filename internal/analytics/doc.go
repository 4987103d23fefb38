package analytics

// Package analytics provides a small fire-and-forget usage tracker. Events
// are posted off the UI thread and failures are logged, never surfaced: the
// app must behave identically with tracking disabled.
