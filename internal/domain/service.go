package domain

// Service represents an entry of the service catalog
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           int64 // minor units
}

// Totals aggregated duration and price of a list of services
type Totals struct {
	TotalDurationMinutes int
	TotalPrice           int64
}
