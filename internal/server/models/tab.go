package models

import "time"

// Tab is a saved transcription. A tab is owned exclusively by the user in
// UserID and is immutable once created except for deletion. Raw audio is
// never persisted alongside the tab text.
type Tab struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Tuning    string    `json:"tuning"`
	BPM       string    `json:"bpm"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
