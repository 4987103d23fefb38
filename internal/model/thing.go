package model

import (
	"strings"
)

// Thing represents a shared 3D model on the remote platform. The same
// structure is used for search result entries and for the detail view; a
// search response only fills the summary fields, a details response fills
// everything.
type Thing struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Thumbnail    string  `json:"thumbnail"`
	PublicURL    string  `json:"public_url"`
	Description  string  `json:"description"`
	Creator      Creator `json:"creator"`
	LikeCount    int     `json:"like_count"`
	CollectCount int     `json:"collect_count"`
}

// Creator is the author of a thing.
type Creator struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	PublicURL string `json:"public_url"`
}

// DisplayName returns the thing name, falling back to the public URL so a
// list row is never blank.
func (t *Thing) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.PublicURL
}

// ThingFile represents a downloadable file attached to a thing.
type ThingFile struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"download_url"`
	Thumbnail   string `json:"thumbnail"`
}

// Extension returns the lowercase file extension without the leading dot,
// or an empty string when the name has no extension.
func (f *ThingFile) Extension() string {
	idx := strings.LastIndex(f.Name, ".")
	if idx < 0 || idx == len(f.Name)-1 {
		return ""
	}
	return strings.ToLower(f.Name[idx+1:])
}

// SearchSession tracks the terms and page of the current search so that
// pagination can request the next page of the same query.
type SearchSession struct {
	Terms string
	Page  int
}
