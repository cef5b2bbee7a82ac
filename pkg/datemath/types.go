package datemath

// Delay is a days+months offset applied to a start date before the billing rule runs.
type Delay struct {
	Days     int    `json:"days"`
	Months   int    `json:"months"`
	Original string `json:"original"`
}

// IsZero reports whether the delay moves the date at all.
func (d Delay) IsZero() bool {
	return d.Days == 0 && d.Months == 0
}

const (
	// DateLayout is the calendar-date format accepted and produced by the engine.
	DateLayout = "2006-01-02"

	// FirstBillingDay and SecondBillingDay are the two billing anchors of every month.
	FirstBillingDay  = 15
	SecondBillingDay = 27

	// NoDelay is echoed as Delay.Original when no delay text was supplied.
	NoDelay = "none"
)
