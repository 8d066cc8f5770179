package config

const (
	// DefaultLogLevel is used when neither flag nor LOG_LEVEL is set.
	DefaultLogLevel = "info"

	// DefaultDateLayout is the time.Parse layout for instants given on the command line.
	DefaultDateLayout = "2006-01-02 15:04"

	// DefaultSubmit is the example submission: Friday 2:12 PM.
	DefaultSubmit = "2025-03-14 14:12"

	// DefaultTurnaroundHours is the example turnaround in working hours.
	DefaultTurnaroundHours = 16.0

	// EnvFile is loaded on startup when it exists.
	EnvFile = ".env"
)
