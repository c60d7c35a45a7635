package domain

// Grid is the calendar overlay produced for a view
type Grid struct {
	Window  TimeWindow
	Mode    ViewMode
	Columns []Column
}

// Column is one (resource, day) column of the calendar
type Column struct {
	Resource  Resource
	DayOffset int
	Cells     []Cell
}

// Cell is one slot of a column with the appointment starting at it, if any
type Cell struct {
	Slot        Slot
	Appointment *Appointment
	Totals      Totals
	Span        float64 // block height in slot units
}

// IsBooked returns true if an appointment starts at this cell
func (c *Cell) IsBooked() bool {
	return c.Appointment != nil
}

// Appointments returns the appointments placed on the column in slot order
func (c *Column) Appointments() []*Appointment {
	result := make([]*Appointment, 0)
	for i := range c.Cells {
		if c.Cells[i].Appointment != nil {
			result = append(result, c.Cells[i].Appointment)
		}
	}
	return result
}
