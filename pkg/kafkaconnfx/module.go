// Package kafkaconnfx wires kafkaconn into a go.uber.org/fx application.
package kafkaconnfx

import (
	"context"

	"github.com/joeydtaylor/kafkaconn/pkg/envsource"
	"github.com/joeydtaylor/kafkaconn/pkg/kafkaconn"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ---------- Options ----------

type Config struct {
	Source        envsource.Source // default: process environment
	StoreDir      string           // default: os.TempDir
	CleanupOnStop bool             // remove SSL store files in OnStop
}

type Option func(*Config)

func WithSource(src envsource.Source) Option { return func(c *Config) { c.Source = src } }
func WithStoreDir(dir string) Option         { return func(c *Config) { c.StoreDir = dir } }
func WithCleanupOnStop() Option              { return func(c *Config) { c.CleanupOnStop = true } }

func defaultConfig() Config {
	return Config{Source: envsource.Env()}
}

// Module provides *kafkaconn.Builder, kafkaconn.Result and kafkaconn.ConfigMap.
// A *zap.Logger in the container is picked up when present.
func Module(opts ...Option) fx.Option {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return fx.Options(
		fx.Provide(func() Config { return cfg }),
		fx.Provide(provideBuilder),
		fx.Provide(provideResult),
		fx.Provide(func(r kafkaconn.Result) kafkaconn.ConfigMap { return r.ConfigMap() }),
	)
}

type builderDeps struct {
	fx.In
	Cfg Config
	Log *zap.Logger `optional:"true"`
}

func provideBuilder(d builderDeps) *kafkaconn.Builder {
	return kafkaconn.New(
		kafkaconn.WithSource(d.Cfg.Source),
		kafkaconn.WithStoreDir(d.Cfg.StoreDir),
		kafkaconn.WithLogger(d.Log),
	)
}

type resultDeps struct {
	fx.In
	LC      fx.Lifecycle
	Cfg     Config
	Builder *kafkaconn.Builder
	Log     *zap.Logger `optional:"true"`
}

func provideResult(d resultDeps) (kafkaconn.Result, error) {
	res, err := d.Builder.Build()
	if err != nil {
		return kafkaconn.Result{}, err
	}
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("kafka connection configured",
		zap.String("protocol", string(res.Protocol())),
		zap.Strings("bootstrapServers", res.BootstrapServers),
	)
	if d.Cfg.CleanupOnStop {
		d.LC.Append(fx.Hook{
			OnStop: func(context.Context) error {
				log.Info("removing kafka credential stores")
				return res.Close()
			},
		})
	}
	return res, nil
}
