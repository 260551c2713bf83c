package config

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir:  DefaultDataDir(),
		Checksum: ChecksumSHA256,
		Output:   OutputText,
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
