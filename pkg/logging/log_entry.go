package logging

// LogEntry represents a structured log record with fields particularly relevant to corpus builds
type LogEntry struct {
	// Standard fields
	Time     int64
	Severity Severity
	Message  string
	File     string
	Line     int
	Function string

	// Build-specific fields
	RunID string // Identifier for the current build run
	Split string // The split being produced (clean, append, twoway, challenge)

	// General structured data
	Fields map[string]interface{}
}
