// root.go - command line parsing and configuration

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yawning/hashes"
	"github.com/yawning/hashes/blake2b"
)

const envPrefix = "HASHSUM"

var (
	errUsage    = errors.New("usage error")
	errResource = errors.New("unreadable input")
)

type options struct {
	algorithm string
	length    int
	key       []byte
	jobs      int
	verbose   bool
}

// run executes the command line and maps the outcome to an exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd := newRootCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "hashsum: %v\n", err)
	}
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage),
		errors.Is(err, hashes.ErrUnknownAlgorithm),
		errors.Is(err, blake2b.ErrConfiguration):
		return 2
	default:
		return 1
	}
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "hashsum [flags] FILE...",
		Short: "Print message digests of files",
		Long: `hashsum reads each FILE fully into memory and prints "<path> <hex>".
A FILE of "-" reads standard input.

Every flag may also be set with a HASHSUM_ environment variable
(HASHSUM_ALGORITHM, HASHSUM_LENGTH, ...) or a YAML file given with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: at least one FILE is required", errUsage)
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return nil
			}
			v.SetConfigFile(configFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("%w: reading config %s: %v", errUsage, configFile, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(v)
			if err != nil {
				return err
			}
			log := newLogger(stderr, opts.verbose)
			defer log.Sync() //nolint:errcheck

			return hashFiles(cmd.Context(), log, opts, args, stdin, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML configuration file")
	flags.StringP("algorithm", "a", "sha256", "digest algorithm (see \"hashsum list\")")
	flags.IntP("length", "l", 0, "BLAKE2b digest length in bytes, 1 to 64")
	flags.StringP("key", "k", "", "BLAKE2b key as hex, at most 64 bytes")
	flags.IntP("jobs", "j", runtime.NumCPU(), "files hashed concurrently")
	flags.BoolP("verbose", "v", false, "log each file to standard error")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, name := range []string{"algorithm", "length", "key", "jobs", "verbose"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	cmd.AddCommand(newListCommand(stdout))
	return cmd
}

func loadOptions(v *viper.Viper) (*options, error) {
	opts := &options{
		algorithm: v.GetString("algorithm"),
		length:    v.GetInt("length"),
		jobs:      v.GetInt("jobs"),
		verbose:   v.GetBool("verbose"),
	}
	if s := v.GetString("key"); s != "" {
		key, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: --key is not valid hex: %v", errUsage, err)
		}
		opts.key = key
	}
	if opts.jobs < 1 {
		opts.jobs = 1
	}
	return opts, nil
}

// digester resolves the options to a hash function.  --length and --key
// only apply to BLAKE2b, and are validated before any input is read.
func (o *options) digester() (func([]byte) (hashes.Digest, error), error) {
	a, err := hashes.Lookup(o.algorithm)
	if err != nil {
		return nil, err
	}
	if o.length == 0 && len(o.key) == 0 {
		return func(msg []byte) (hashes.Digest, error) { return a.Sum(msg), nil }, nil
	}
	if a.Name != "blake2b" && a.Name != "blake2b256" {
		return nil, fmt.Errorf("%w: --length and --key require blake2b, not %s", errUsage, a.Name)
	}

	size := o.length
	if size == 0 {
		size = a.Size
	}
	if err := blake2b.Validate(len(o.key), size); err != nil {
		return nil, err
	}
	key := o.key
	return func(msg []byte) (hashes.Digest, error) {
		return hashes.SumBLAKE2b(msg, key, size)
	}, nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core).Named("hashsum")
}

func newListCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the supported algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tBITS\tBLOCK")
			for _, name := range hashes.Algorithms() {
				a, err := hashes.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\n", a.Name, a.Size*8, a.BlockSize)
			}
			return tw.Flush()
		},
	}
}
