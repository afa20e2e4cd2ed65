package models

import "time"

type OrderStatus string

const (
	StatusPlaced     OrderStatus = "placed"
	StatusDispatched OrderStatus = "dispatched"
	StatusDelivered  OrderStatus = "delivered"
)

// GeoPoint is an illustrative coordinate pair; no real geocoding happens.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Order is a single-farm purchase record. Items and total are snapshotted at
// checkout and never recomputed afterwards; only the status (and the courier
// location that rides along with it) changes.
type Order struct {
	ID               string      `json:"id"`
	Items            []CartLine  `json:"items"`
	Total            float64     `json:"total"`
	Status           OrderStatus `json:"status"`
	CustomerName     string      `json:"customerName"`
	CustomerAddress  string      `json:"customerAddress"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
	FarmID           string      `json:"farmId"` // slug derived from the farm display name
	FarmName         string      `json:"farmName"`
	CustomerLocation GeoPoint    `json:"customerLocation"`
	CurrentLocation  *GeoPoint   `json:"currentLocation,omitempty"`
}

// OrderDraft is what checkout stages before ids and timestamps exist.
type OrderDraft struct {
	Items            []CartLine  `json:"items"`
	Total            float64     `json:"total"`
	Status           OrderStatus `json:"status"`
	CustomerName     string      `json:"customerName"`
	CustomerAddress  string      `json:"customerAddress"`
	FarmID           string      `json:"farmId"`
	FarmName         string      `json:"farmName"`
	CustomerLocation GeoPoint    `json:"customerLocation"`
}
