package database

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Path is the database file for the sqlite driver.
	Path string `mapstructure:"path" default:"linen_tracker.db"`
	// Host is the database host (mysql).
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port (mysql).
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user (mysql).
	User string `mapstructure:"user" default:"root"`
	// Password is the database password (mysql).
	Password string `mapstructure:"password" default:""`
	// Name is the database name (mysql).
	Name string `mapstructure:"name" default:"linen_tracker"`
	// TimeoutSeconds bounds connection setup and I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
