package domain

import "time"

// RenderInfo records the input fingerprint an output file was last written from.
type RenderInfo struct {
	Output    string    `json:"output"`
	InputHash string    `json:"input_hash,omitempty"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
