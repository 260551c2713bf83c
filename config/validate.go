package config

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
)

// Validate checks the config for operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	switch cfg.Checksum {
	case ChecksumSHA256, ChecksumBLAKE3:
	default:
		return fmt.Errorf("checksum must be %q or %q, got %q", ChecksumSHA256, ChecksumBLAKE3, cfg.Checksum)
	}
	switch cfg.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, cfg.Output)
	}
	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", cfg.Log.Level)
	}
	return nil
}
