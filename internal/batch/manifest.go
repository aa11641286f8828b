package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one rendered diagram in the output manifest.
type ManifestEntry struct {
	Name      string   `json:"name"`
	Title     string   `json:"title,omitempty"`
	Source    string   `json:"source"`
	Table     string   `json:"table"`
	Game      string   `json:"game"`
	Balls     int      `json:"balls"`
	Image     string   `json:"image"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// WriteManifest writes the successful results to path as JSON.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:      r.Name,
			Title:     r.Title,
			Source:    r.Source,
			Table:     r.Table,
			Game:      r.Game,
			Balls:     r.Balls,
			Image:     r.Image,
			Thumbnail: r.Thumbnail,
			Warnings:  r.Warnings,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
