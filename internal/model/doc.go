package model

// Package model defines the domain data structures shared across the app:
// things (remote 3D models), their downloadable files, and search sessions.
// Structures are designed for direct binding in the UI and decode straight
// from the remote platform's JSON responses.
