package fetch

// Config holds configuration for remote source fetching.
type Config struct {
	// TimeoutSeconds bounds every fetch, HTTP or bucket.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// Endpoint is the object storage endpoint for bucket-backed sources.
	// When empty, only http(s) source references are accepted.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the object storage access key.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the object storage secret key.
	SecretKey string `mapstructure:"secret_key" default:""`
	// Bucket is the bucket holding reader exports.
	Bucket string `mapstructure:"bucket" default:"linen-exports"`
	// UseSSL enables TLS for the object storage connection.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Region is the object storage region.
	Region string `mapstructure:"region" default:""`
}
