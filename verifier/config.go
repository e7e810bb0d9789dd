package verifier

// Config is a configuration for the verifier application
type Config struct {
	HTTPAddr string `mapstructure:"http_addr"`
	// Mode is the checksum algorithm: "legacy" (default) or "luhn".
	Mode string `mapstructure:"mode"`
	// PANHashKey is the pepper for card fingerprints in responses and logs.
	// Empty disables fingerprints.
	PANHashKey string `mapstructure:"pan_hash_key"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr: "localhost:9090",
		Mode:     "legacy",
	}
}
