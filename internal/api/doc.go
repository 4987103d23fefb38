package api

// Package api implements the HTTP client for the Thingiverse REST API:
// searching things, fetching thing details and file lists, and downloading
// file contents. All calls are synchronous and context-aware; the browse
// service is responsible for running them off the UI thread.
