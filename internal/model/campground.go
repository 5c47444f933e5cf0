package model

import "time"

// Campground is a named collection of campsites sharing one map image.
// Each campground belongs to exactly one event.
//
// Fields:
//  ID        – primary key identifier.
//  EventID   – event this campground belongs to.
//  Name      – unique campground name per event.
//  MapImage  – path of the uploaded map image (nil until uploaded).
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Campground struct {
	ID        uint64    // campgrounds.id
	EventID   uint64    // campgrounds.event_id
	Name      string    // campgrounds.name
	MapImage  *string   // campgrounds.map_image (nullable)
	CreatedAt time.Time // campgrounds.created_at
	UpdatedAt time.Time // campgrounds.updated_at
}
