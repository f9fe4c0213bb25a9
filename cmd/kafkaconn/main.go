// Command kafkaconn prints Kafka client configuration resolved from KAFKA_URL
// and the KAFKA_* certificate variables.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joeydtaylor/kafkaconn/pkg/codec"
	"github.com/joeydtaylor/kafkaconn/pkg/envsource"
	"github.com/joeydtaylor/kafkaconn/pkg/kafkaconn"
	"github.com/joeydtaylor/kafkaconn/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

var version = "dev"

// Exit codes.
const (
	exitOK                   = 0
	exitError                = 1
	exitMissingConfiguration = 2
	exitInvalidArgument      = 3
)

type params struct {
	format   string
	storeDir string
	envFiles []string
	tomls    []string
	output   string
	logDir   string
	verbose  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	app, p := newApp()
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	// --help and --version terminate through here; stop before building.
	terminated := false
	app.Terminate(func(int) { terminated = true })
	_, err := app.Parse(args)
	if terminated {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "kafkaconn: %v\n", err)
		return exitError
	}

	level := zapcore.WarnLevel
	if p.verbose {
		level = zapcore.DebugLevel
	}
	log := logger.NewLog(logger.Options{Dir: p.logDir, Name: "kafkaconn.log", Level: level})
	defer log.Sync()

	err = execute(p, log, stdout)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, kafkaconn.ErrMissingConfiguration):
		log.Error("configuration incomplete", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return exitMissingConfiguration
	case errors.Is(err, kafkaconn.ErrInvalidArgument):
		log.Error("TLS material incomplete", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return exitInvalidArgument
	default:
		log.Error("kafkaconn failed", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return exitError
	}
}

func newApp() (*kingpin.Application, *params) {
	p := &params{}
	app := kingpin.New("kafkaconn", "Resolves KAFKA_URL and KAFKA_* certificates into Kafka client configuration.")
	app.Version(version)
	app.Flag("format", "Output format.").
		Short('f').
		Default(codec.NameProperties).
		EnumVar(&p.format, codec.NameProperties, codec.NameJSON, codec.NameEnv)
	app.Flag("store-dir", "Directory for the generated truststore and keystore. Defaults to the system temp directory.").
		Envar("KAFKACONN_STORE_DIR").
		StringVar(&p.storeDir)
	app.Flag("env-file", "Read variables from a .env file. Repeatable; checked before the process environment.").
		ExistingFilesVar(&p.envFiles)
	app.Flag("toml", "Read variables from a flat TOML file. Repeatable; checked before the process environment.").
		ExistingFilesVar(&p.tomls)
	app.Flag("output", "Write to this file instead of stdout.").
		Short('o').
		StringVar(&p.output)
	app.Flag("log-dir", "Also write logs to a rotated file in this directory.").
		Envar("KAFKACONN_LOG_DIR").
		StringVar(&p.logDir)
	app.Flag("verbose", "Log debug details to stderr.").
		Short('v').
		BoolVar(&p.verbose)
	return app, p
}

func execute(p *params, log *zap.Logger, stdout io.Writer) error {
	src, err := sources(p)
	if err != nil {
		return err
	}
	c, err := codec.ByName(p.format)
	if err != nil {
		return err
	}

	cm, err := kafkaconn.New(
		kafkaconn.WithSource(src),
		kafkaconn.WithStoreDir(p.storeDir),
		kafkaconn.WithLogger(log),
	).BuildConfigMap()
	if err != nil {
		return err
	}

	if p.output == "" {
		return c.Encode(stdout, cm)
	}
	f, err := os.OpenFile(p.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("kafkaconn: open %s: %w", p.output, err)
	}
	if err := c.Encode(f, cm); err != nil {
		f.Close()
		return fmt.Errorf("kafkaconn: write %s: %w", p.output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("kafkaconn: close %s: %w", p.output, err)
	}
	log.Debug("configuration written", zap.String("output", p.output), zap.String("format", p.format))
	return nil
}

func sources(p *params) (envsource.Source, error) {
	var out []envsource.Source
	if len(p.envFiles) > 0 {
		s, err := envsource.Dotenv(p.envFiles...)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	for _, path := range p.tomls {
		s, err := envsource.TOMLFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	out = append(out, envsource.Env())
	return envsource.Chain(out...), nil
}
