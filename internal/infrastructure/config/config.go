package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "GH_MIRROR"

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	GitHub     GitHub
	Git        Git
	Events     Events
}

type HTTPServer struct {
	Address        string
	Port           int
	RequestTimeout time.Duration
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

func (d Database) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable", d.Username, d.Password, d.Host, d.Port, d.DbName)
}

type GitHub struct {
	Host  string
	Login string
	Token string
	// APIURL overrides the REST base URL derived from Host.
	APIURL string
}

type Git struct {
	Binary           string
	ForkRemotePrefix string
}

type Events struct {
	BufferSize int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.request_timeout", "60s")

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "mirror-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "ghmirror")
	v.SetDefault("database.migrations_path", "migrations")

	v.SetDefault("github.host", "github.com")
	v.SetDefault("github.login", "")
	v.SetDefault("github.token", "")
	v.SetDefault("github.api_url", "")

	v.SetDefault("git.binary", "git")
	v.SetDefault("git.fork_remote_prefix", "fork-")

	v.SetDefault("events.buffer_size", 64)
}

// Load reads config/config.yaml (optional), a .env file (optional) and
// GH_MIRROR_* environment variables, in increasing precedence.
func Load(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:        v.GetString("http_server.address"),
			Port:           v.GetInt("http_server.port"),
			RequestTimeout: v.GetDuration("http_server.request_timeout"),
		},
		Database: Database{
			Username:       v.GetString("database.username"),
			Password:       v.GetString("database.password"),
			Host:           v.GetString("database.host"),
			Port:           v.GetString("database.port"),
			DbName:         v.GetString("database.db_name"),
			MigrationsPath: v.GetString("database.migrations_path"),
		},
		GitHub: GitHub{
			Host:   v.GetString("github.host"),
			Login:  v.GetString("github.login"),
			Token:  v.GetString("github.token"),
			APIURL: v.GetString("github.api_url"),
		},
		Git: Git{
			Binary:           v.GetString("git.binary"),
			ForkRemotePrefix: v.GetString("git.fork_remote_prefix"),
		},
		Events: Events{
			BufferSize: v.GetInt("events.buffer_size"),
		},
	}
	if cfg.Git.ForkRemotePrefix == "" {
		return nil, errors.New("git.fork_remote_prefix must not be empty")
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Printf("Error loading config: %s", err)
		os.Exit(1)
	}
	return cfg
}
