package entity

import "time"

// Image records an uploaded image. The binary payload lives in object
// storage; only the URL and ownership linkage are persisted here.
type Image struct {
	ID        string
	URL       string
	UserID    string
	CreatedAt time.Time
}
