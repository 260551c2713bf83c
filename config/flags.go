package config

import (
	"flag"
	"io"
	"strings"
)

// Flags holds parsed global command-line flags.
type Flags struct {
	Help    bool
	Version bool

	Config   string
	DataDir  string
	Checksum string
	JSON     bool

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args: the command and its arguments.
	Args []string

	// Explicitly-set bool flags (for true/false overrides).
	SetJSON    bool
	SetLogJSON bool
}

// ParseFlags parses the global flags in args. Parsing stops at the first
// non-flag argument, which is the command. Errors are reported to errOut.
func ParseFlags(args []string, errOut io.Writer) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("klingnet-mnemonic", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {}

	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "v", false, "Show version (shorthand)")

	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")
	fs.StringVar(&f.DataDir, "datadir", "", "Data directory path")
	fs.StringVar(&f.Checksum, "checksum", "", "Checksum hash (sha256 or blake3)")
	fs.BoolVar(&f.JSON, "json", false, "Print results as JSON")

	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.SetJSON = isFlagSet(fs, "json")
	f.SetLogJSON = isFlagSet(fs, "log-json")
	f.Args = fs.Args()
	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}
	if f.Checksum != "" {
		cfg.Checksum = ChecksumType(strings.ToLower(f.Checksum))
	}
	if f.SetJSON {
		if f.JSON {
			cfg.Output = OutputJSON
		} else {
			cfg.Output = OutputText
		}
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
