// Package queue defines message payloads exchanged over the message broker.
package queue

// HandViewedEvent is published every time a shared hand page is rendered.
// The consumer folds these into the share's view counter so page serving
// never writes to the primary database.
type HandViewedEvent struct {
	ShareID  string `json:"share_id"`
	ViewedAt string `json:"viewed_at"`
}
