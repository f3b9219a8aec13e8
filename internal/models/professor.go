package models

// Professor teaches lessons. Professors are immutable once registered.
type Professor struct {
	ID         int    `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Department string `json:"department" yaml:"department"`
}
