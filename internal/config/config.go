package config

import (
	"os"
	"strconv"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server Server `yaml:"server"`
	Store  Store  `yaml:"store"`
	Trace  Trace  `yaml:"trace"`
	UI     UI     `yaml:"ui"`
}

type Server struct {
	Listen    string `yaml:"listen"`
	LogLevel  string `yaml:"logLevel"`  // debug, info, warn, error
	LogFormat string `yaml:"logFormat"` // text, json
}

type Store struct {
	Backend       string `yaml:"backend"` // memory, sqlite, postgres, redis, memcached
	BlobKey       string `yaml:"blobKey"`
	SQLitePath    string `yaml:"sqlitePath"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	KeyPrefix     string `yaml:"keyPrefix"`
}

type Trace struct {
	Enable   bool   `yaml:"enable"`
	Endpoint string `yaml:"endpoint"`
}

type UI struct {
	PageSize int `yaml:"pageSize"`
}

func Default() Config {
	return Config{
		Server: Server{
			Listen:    ":8000",
			LogLevel:  "info",
			LogFormat: "text",
		},
		Store: Store{
			Backend:    "sqlite",
			BlobKey:    "listings",
			SQLitePath: "data/linksera.db",
			KeyPrefix:  "linksera:",
		},
		UI: UI{
			PageSize: 5,
		},
	}
}

// Load reads the YAML file over the defaults and applies LINKSERA_* overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		file, err := os.Open(path)
		if err == nil {
			defer file.Close()
			err = yaml.NewDecoder(file).Decode(&config)
			if err != nil {
				return Config{}, err
			}
		} else if !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	applyEnv(&config)

	return config, nil
}

func applyEnv(config *Config) {
	if v := os.Getenv("LINKSERA_LISTEN"); v != "" {
		config.Server.Listen = v
	}
	if v := os.Getenv("LINKSERA_LOG_LEVEL"); v != "" {
		config.Server.LogLevel = v
	}
	if v := os.Getenv("LINKSERA_LOG_FORMAT"); v != "" {
		config.Server.LogFormat = v
	}
	if v := os.Getenv("LINKSERA_STORE"); v != "" {
		config.Store.Backend = v
	}
	if v := os.Getenv("LINKSERA_SQLITE_PATH"); v != "" {
		config.Store.SQLitePath = v
	}
	if v := os.Getenv("LINKSERA_POSTGRES_DSN"); v != "" {
		config.Store.PostgresDsn = v
	}
	if v := os.Getenv("LINKSERA_REDIS_ADDR"); v != "" {
		config.Store.RedisAddr = v
	}
	if v := os.Getenv("LINKSERA_REDIS_PASSWORD"); v != "" {
		config.Store.RedisPassword = v
	}
	if v := os.Getenv("LINKSERA_MEMCACHED_ADDR"); v != "" {
		config.Store.MemcachedAddr = v
	}
	if v := os.Getenv("LINKSERA_TRACE_ENDPOINT"); v != "" {
		config.Trace.Enable = true
		config.Trace.Endpoint = v
	}
	if v := os.Getenv("LINKSERA_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.UI.PageSize = n
		}
	}
}
