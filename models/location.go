package models

// Location is a node on the game map. Records are scanned in bulk and
// returned as-is; this service owns no invariants over them.
type Location struct {
	ID       int64  `gorm:"primaryKey; autoIncrement:false" json:"id"`
	Occupied bool   `json:"occupied"`
	Team     *int64 `json:"team"`
}
