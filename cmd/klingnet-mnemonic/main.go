// klingnet-mnemonic converts keys to BIP-39 mnemonic sentences and back.
package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/config"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
	"golang.org/x/term"
)

const version = "0.1.0"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// usageError marks errors caused by bad command-line input.
type usageError struct {
	msg string
}

func (e usageError) Error() string { return e.msg }

type app struct {
	cfg    *config.Config
	codec  *mnemonic.Codec
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	flags, err := config.ParseFlags(args, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitUsage
	}
	if flags.Help {
		usage(out)
		return exitOK
	}
	if flags.Version {
		fmt.Fprintf(out, "klingnet-mnemonic version %s\n", version)
		return exitOK
	}
	if len(flags.Args) == 0 {
		usage(errOut)
		return exitUsage
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitFailure
	}
	if err := log.Init(errOut, cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fmt.Fprintf(errOut, "Error: init logging: %v\n", err)
		return exitFailure
	}

	hash, err := crypto.HashByName(string(cfg.Checksum))
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitFailure
	}
	if cfg.Checksum != config.ChecksumSHA256 {
		log.CLI.Warn().
			Str("checksum", string(cfg.Checksum)).
			Msg("Non-standard checksum: sentences are not BIP-39 compatible")
	}

	a := &app{
		cfg:    cfg,
		codec:  mnemonic.New(mnemonic.WithHash(hash)),
		in:     in,
		out:    out,
		errOut: errOut,
	}

	cmd, cmdArgs := flags.Args[0], flags.Args[1:]
	log.CLI.Debug().Str("command", cmd).Str("checksum", string(cfg.Checksum)).Msg("Running command")

	switch cmd {
	case "encode":
		err = a.cmdEncode(cmdArgs)
	case "decode":
		err = a.cmdDecode(cmdArgs)
	case "check":
		err = a.cmdCheck(cmdArgs)
	case "word":
		err = a.cmdWord(cmdArgs)
	case "init":
		err = a.cmdInit()
	case "help":
		usage(out)
		return exitOK
	default:
		fmt.Fprintf(errOut, "Unknown command: %s\n\n", cmd)
		usage(errOut)
		return exitUsage
	}

	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		var ue usageError
		if errors.As(err, &ue) {
			return exitUsage
		}
		return exitFailure
	}
	return exitOK
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage: klingnet-mnemonic [global flags] <command> [flags] [args]

Global flags:
  --config, -c <path>   Config file (default: <datadir>/mnemonic.conf)
  --datadir <path>      Data directory (default: ~/.klingnet-mnemonic)
  --checksum <hash>     sha256 (BIP-39, default) or blake3 (non-standard)
  --json                Print results as JSON
  --log-level <level>   debug, info, warn (default), error
  --log-file <path>     Also write JSON logs to this file
  --log-json            Write logs to stderr as JSON
  --help, -h            Show this help message
  --version, -v         Show version information

Commands:
  encode [--numbered] [hex-key]
                        Convert a 16/20/24/28/32-byte key to a mnemonic.
                        Prompts (without echo) when the key is omitted.
  decode [--pubkey] [--force] [words...]
                        Convert a 12/15/18/21/24-word mnemonic to its key.
                        --force prints the key even if the checksum fails.
                        --pubkey adds the secp256k1 public key (32-byte keys).
  check [words...]      Exit 0 if the mnemonic is valid, 1 otherwise
  word <word|index>     Look a word or an index up in the dictionary
  init                  Write a default config file if none exists
`)
}

// ── input ───────────────────────────────────────────────────────────────

// readInput reads one line of input. On a terminal the line is read without
// echo since it holds key material.
func (a *app) readInput(prompt string) (string, error) {
	if f, ok := a.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(a.errOut, prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.errOut) // newline after hidden input
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		defer clear(b)
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", usageError{"no input"}
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func parseHexKey(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, usageError{fmt.Sprintf("key is not valid hex: %v", err)}
	}
	return key, nil
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ── encode ──────────────────────────────────────────────────────────────

type encodeResult struct {
	Sentence     string   `json:"sentence"`
	Words        []string `json:"words"`
	KeyBytes     int      `json:"key_bytes"`
	ChecksumBits int      `json:"checksum_bits"`
	Checksum     string   `json:"checksum"`
	Fingerprint  string   `json:"fingerprint"`
}

func (a *app) cmdEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	numbered := fs.Bool("numbered", false, "Print one numbered word per line")
	if err := fs.Parse(args); err != nil {
		return usageError{err.Error()}
	}
	if fs.NArg() > 1 {
		return usageError{"Usage: klingnet-mnemonic encode [--numbered] [hex-key]"}
	}

	var input string
	if fs.NArg() == 1 {
		input = fs.Arg(0)
	} else {
		var err error
		if input, err = a.readInput("Key (hex): "); err != nil {
			return err
		}
	}

	key, err := parseHexKey(input)
	if err != nil {
		return err
	}
	defer clear(key)

	done := log.Benchmark("encode")
	words, err := a.codec.Encode(key)
	done()
	if err != nil {
		return err
	}
	log.Codec.Debug().Int("key_bytes", len(key)).Int("words", len(words)).Msg("Encoded key")

	if a.cfg.Output == config.OutputJSON {
		return a.writeJSON(encodeResult{
			Sentence:     strings.Join(words, " "),
			Words:        words,
			KeyBytes:     len(key),
			ChecksumBits: mnemonic.ChecksumBits(len(key)),
			Checksum:     string(a.cfg.Checksum),
			Fingerprint:  crypto.Fingerprint(key),
		})
	}
	if *numbered {
		for i, w := range words {
			fmt.Fprintf(a.out, "%2d. %s\n", i+1, w)
		}
		return nil
	}
	fmt.Fprintln(a.out, strings.Join(words, " "))
	return nil
}

// ── decode ──────────────────────────────────────────────────────────────

type decodeResult struct {
	Key         string `json:"key"`
	KeyBytes    int    `json:"key_bytes"`
	Fingerprint string `json:"fingerprint"`
	PublicKey   string `json:"pubkey,omitempty"`
	ChecksumOK  bool   `json:"checksum_ok"`
}

func (a *app) sentenceFromArgs(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return a.readInput("Mnemonic: ")
}

func (a *app) cmdDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	pubkey := fs.Bool("pubkey", false, "Also print the secp256k1 public key (32-byte keys only)")
	force := fs.Bool("force", false, "Print the key even if the checksum does not match")
	if err := fs.Parse(args); err != nil {
		return usageError{err.Error()}
	}

	sentence, err := a.sentenceFromArgs(fs.Args())
	if err != nil {
		return err
	}

	done := log.Benchmark("decode")
	key, decodeErr := a.codec.DecodeString(sentence)
	done()
	defer clear(key)

	checksumOK := decodeErr == nil
	if decodeErr != nil {
		if !errors.Is(decodeErr, mnemonic.ErrChecksumMismatch) || !*force {
			return decodeErr
		}
		log.CLI.Warn().Int("key_bytes", len(key)).Msg("Checksum mismatch, printing key anyway (--force)")
	}
	log.Codec.Debug().Int("key_bytes", len(key)).Bool("checksum_ok", checksumOK).Msg("Decoded mnemonic")

	res := decodeResult{
		Key:         hex.EncodeToString(key),
		KeyBytes:    len(key),
		Fingerprint: crypto.Fingerprint(key),
		ChecksumOK:  checksumOK,
	}
	if *pubkey {
		if len(key) != mnemonic.MaxKeyLen {
			return usageError{fmt.Sprintf("--pubkey needs a %d-byte key, got %d bytes", mnemonic.MaxKeyLen, len(key))}
		}
		pub, err := crypto.PublicKeyFromSecret(key)
		if err != nil {
			return err
		}
		res.PublicKey = hex.EncodeToString(pub)
	}

	if a.cfg.Output == config.OutputJSON {
		if err := a.writeJSON(res); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(a.out, res.Key)
		if res.PublicKey != "" {
			fmt.Fprintln(a.out, res.PublicKey)
		}
	}
	// A forced decode still reports the mismatch through the exit code.
	return decodeErr
}

// ── check ───────────────────────────────────────────────────────────────

type checkResult struct {
	Valid bool   `json:"valid"`
	Words int    `json:"words"`
	Error string `json:"error,omitempty"`
}

func (a *app) cmdCheck(args []string) error {
	sentence, err := a.sentenceFromArgs(args)
	if err != nil {
		return err
	}
	words := strings.Fields(sentence)
	key, decodeErr := a.codec.Decode(words)
	clear(key)

	res := checkResult{Valid: decodeErr == nil, Words: len(words)}
	if decodeErr != nil {
		res.Error = decodeErr.Error()
	}

	if a.cfg.Output == config.OutputJSON {
		if err := a.writeJSON(res); err != nil {
			return err
		}
	} else if res.Valid {
		fmt.Fprintln(a.out, "valid")
	}
	return decodeErr
}

// ── word ────────────────────────────────────────────────────────────────

type wordResult struct {
	Index int    `json:"index"`
	Word  string `json:"word"`
}

func (a *app) cmdWord(args []string) error {
	if len(args) != 1 {
		return usageError{"Usage: klingnet-mnemonic word <word|index>"}
	}
	dict := a.codec.Dictionary()

	var res wordResult
	if n, err := strconv.Atoi(args[0]); err == nil {
		w, err := dict.WordAt(n)
		if err != nil {
			return err
		}
		res = wordResult{Index: n, Word: w}
	} else {
		w, err := a.codec.IsValidWord(args[0])
		if err != nil {
			return err
		}
		idx, _ := dict.IndexOf(w)
		res = wordResult{Index: idx, Word: w}
	}

	if a.cfg.Output == config.OutputJSON {
		return a.writeJSON(res)
	}
	fmt.Fprintf(a.out, "%d %s\n", res.Index, res.Word)
	return nil
}

// ── init ────────────────────────────────────────────────────────────────

func (a *app) cmdInit() error {
	written, err := config.EnsureConfigFile(a.cfg)
	if err != nil {
		return err
	}
	path := a.cfg.ConfigFile()
	log.Config.Info().Str("path", path).Bool("created", written).Msg("Config file")
	if written {
		fmt.Fprintf(a.out, "Created %s\n", path)
	} else {
		fmt.Fprintf(a.out, "Config file already exists: %s\n", path)
	}
	return nil
}
