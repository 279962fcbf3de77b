package model

// ShareRecord links a shareable URL to a hand and the viewer it is
// personalized for.  Created by the app when a user shares a hand; this
// service only reads it and bumps the view counter.
//
// Fields:
//  ShareID    – primary key, appears in the /hands/{shareID} URL.
//  HandID     – foreign key into the hands documents.
//  UserID     – the sharer; identifies the hero seat during transform.
//  SharerName – display name shown on the replay page.
//  ViewCount  – monotonic page-view counter, incremented best-effort.
type ShareRecord struct {
    ShareID    string `json:"share_id"`
    HandID     string `json:"hand_id"`
    UserID     string `json:"user_id"`
    SharerName string `json:"sharer_name"`
    ViewCount  uint64 `json:"view_count"`
}
