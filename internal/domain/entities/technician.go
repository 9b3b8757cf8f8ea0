package entities

// Technician is read-only reference data. The registry is loaded once at
// startup and never mutated by the console.
type Technician struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Region string `json:"region"`
}
