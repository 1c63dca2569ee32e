package sqlite

// Config holds SQLite settings
type Config struct {
	// Path is the database file. Missing parent directories are created.
	Path string
}

// DefaultConfig returns sensible defaults for SQLite configuration
func DefaultConfig() Config {
	return Config{
		Path: "./data/wordduel.db",
	}
}
