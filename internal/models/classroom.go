package models

// Classroom is static reference data identified by its room number.
type Classroom struct {
	Number       string `json:"number" yaml:"number"`
	Capacity     int    `json:"capacity" yaml:"capacity"`
	HasProjector bool   `json:"has_projector" yaml:"has_projector"`
}
