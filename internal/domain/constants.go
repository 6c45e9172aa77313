package domain

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Status update defaults
const (
	DefaultStatusEmoji = ":palm_tree:"
	StatusTextTemplate = "On vacation until %s"
)
