package domain

// Scheduling defaults. The config file can override step and lead time;
// these are the values used when it does not.
const (
	DefaultSlotStepMinutes    = 30
	DefaultMinLeadTimeMinutes = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Validation bounds for schedule authoring.
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxExceptionReasonLength  = 500
)
