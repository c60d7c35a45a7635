package domain

// Resource represents a bookable assistant
type Resource struct {
	ID    string
	Label string
}
