package platform

// Package platform contains OS integration glue: temp-file handling for
// downloaded models, directory helpers, and opening files with the system
// default application.
