package models

// Shared snapshot envelopes. Two logical records live in the external KV
// store, one for orders and one for reviews, each wrapped as
// {"state":{"items":[...],"lastUpdated":<unix-ms>}}. LastUpdated is the
// logical clock the last-writer-wins reconciliation compares.

type OrderSnapshot struct {
	State OrderSnapshotState `json:"state"`
}

type OrderSnapshotState struct {
	Items       []Order `json:"items"`
	LastUpdated int64   `json:"lastUpdated"`
}

type ReviewSnapshot struct {
	State ReviewSnapshotState `json:"state"`
}

type ReviewSnapshotState struct {
	Items       []Review `json:"items"`
	LastUpdated int64    `json:"lastUpdated"`
}
