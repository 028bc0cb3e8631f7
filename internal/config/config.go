package config

import (
	"os"
	"time"

	errorsUtils "github.com/Egor213/UniLog/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"

	"github.com/joho/godotenv"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		PG         `yaml:"postgres"`
		HTTP       `yaml:"http"`
		GRPC       `yaml:"grpc"`
		Prometheus `yaml:"prometheus"`
		Kafka      `yaml:"kafka"`
		Sweeper    `yaml:"sweeper"`
		Trace      `yaml:"trace"`
		Tenants    `yaml:"tenants"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	PG struct {
		MaxPoolSize int    `env-required:"true" env:"MAX_POOL_SIZE" yaml:"max_pool_size"`
		URL         string `env-required:"true" env:"PG_URL"`
	}

	HTTP struct {
		Port string `env-required:"true" yaml:"port" env:"HTTP_PORT"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}

	GRPC struct {
		Port string `env-required:"true" yaml:"port" env:"GRPC_PORT"`
	}

	// Kafka events are disabled when no brokers are configured.
	Kafka struct {
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"unilog.events"`
	}

	Sweeper struct {
		Interval   time.Duration `yaml:"interval" env:"SWEEP_INTERVAL" env-default:"1h"`
		HomeTenant int64         `yaml:"home_tenant" env:"SWEEP_HOME_TENANT" env-default:"1"`
	}

	Trace struct {
		RootDir string `yaml:"root_dir" env:"TRACE_ROOT_DIR"`
	}

	Tenants struct {
		IDs []int64 `yaml:"ids" env:"TENANT_IDS" env-separator:","`
	}
)

const ENV_PATH = "infra/.env.dev"

func init() {
	if err := godotenv.Load(ENV_PATH); err != nil {
		log.WithField("path", ENV_PATH).Infof("Env file is not loaded: %v", err)
	}
}

func New() (*Config, error) {
	cfg := &Config{}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = "infra/config.yaml"
	}

	if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if cfg.Trace.RootDir == "" {
		if wd, err := os.Getwd(); err == nil {
			cfg.Trace.RootDir = wd
		}
	}

	return cfg, nil
}
