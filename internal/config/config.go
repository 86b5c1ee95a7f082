package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrStoreNotConfigured is returned when neither live store URL/key pair is usable.
var ErrStoreNotConfigured = errors.New("live store not configured")

// Load builds the runtime configuration. Defaults are applied first, then the
// optional TOML file at cfgPath, then environment variables.
func Load(cfgPath string) (Config, error) {
	cfg := defaultConfig()

	if cfgPath != "" {
		if _, err := toml.DecodeFile(cfgPath, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		AppEnv: "development",
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"https://*", "http://localhost:3000"},
		},
		Auth: AuthConfig{
			TokenTTLHours: 24,
		},
		Upload: UploadConfig{
			Dir:           "uploads",
			PublicBaseURL: "/uploads",
			MaxSizeMB:     5,
		},
	}
}

type Config struct {
	AppEnv     string           `toml:"app_env"`
	Server     ServerConfig     `toml:"server"`
	Store      StoreConfig      `toml:"store"`
	Redis      RedisConfig      `toml:"redis"`
	Auth       AuthConfig       `toml:"auth"`
	Upload     UploadConfig     `toml:"upload"`
	Cloudinary CloudinaryConfig `toml:"cloudinary"`
}

func (c Config) String() string {
	return fmt.Sprintf("AppEnv: %s\nServer: %s\nStore: %s\nRedis: %s\nUpload: %s\nCloudinary: %s",
		c.AppEnv,
		c.Server,
		c.Store,
		c.Redis,
		c.Upload,
		c.Cloudinary,
	)
}

type ServerConfig struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

func (c ServerConfig) String() string {
	return fmt.Sprintf("\n Address: %s\n AllowedOrigins: %v", c.Addr, c.AllowedOrigins)
}

// StoreConfig holds the connection URL/key pairs for the live store. The public
// pair is used for reads of public content, the service pair for member data and
// admin writes. The service URL defaults to the public URL.
type StoreConfig struct {
	URL            string `toml:"url"`
	AnonKey        string `toml:"anon_key"`
	ServiceURL     string `toml:"service_url"`
	ServiceRoleKey string `toml:"service_role_key"`
	AutoMigrate    bool   `toml:"auto_migrate"`
}

func (c StoreConfig) String() string {
	return fmt.Sprintf("\n URL: %s\n ServiceURL: %s\n PublicConfigured: %t\n ServiceConfigured: %t",
		redactURL(c.URL),
		redactURL(c.serviceURL()),
		c.PublicConfigured(),
		c.ServiceConfigured(),
	)
}

func (c StoreConfig) serviceURL() string {
	if c.ServiceURL != "" {
		return c.ServiceURL
	}
	return c.URL
}

// PublicConfigured reports whether the public URL/key pair passes the probe.
func (c StoreConfig) PublicConfigured() bool {
	return IsStoreConfigured(c.URL, c.AnonKey)
}

// ServiceConfigured reports whether the service-role URL/key pair passes the probe.
func (c StoreConfig) ServiceConfigured() bool {
	return IsStoreConfigured(c.serviceURL(), c.ServiceRoleKey)
}

// PublicDSN returns the public connection string with the key as password.
func (c StoreConfig) PublicDSN() (string, error) {
	return withPassword(c.URL, c.AnonKey)
}

// ServiceDSN returns the service-role connection string with the key as password.
func (c StoreConfig) ServiceDSN() (string, error) {
	return withPassword(c.serviceURL(), c.ServiceRoleKey)
}

// RawDSN returns the connection string for the raw SQL handle. The public pair
// wins when usable; otherwise the service-role pair is used.
func (c StoreConfig) RawDSN() (string, error) {
	switch {
	case c.PublicConfigured():
		return c.PublicDSN()
	case c.ServiceConfigured():
		return c.ServiceDSN()
	}
	return "", ErrStoreNotConfigured
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

func (c RedisConfig) String() string {
	return fmt.Sprintf("\n Addr: %s\n DB: %d", c.Addr, c.DB)
}

// Enabled reports whether a Redis address was supplied.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

type UploadConfig struct {
	Dir           string `toml:"dir"`
	PublicBaseURL string `toml:"public_base_url"`
	MaxSizeMB     int64  `toml:"max_size_mb"`
}

func (c UploadConfig) String() string {
	return fmt.Sprintf("\n Dir: %s\n PublicBaseURL: %s\n MaxSizeMB: %d", c.Dir, c.PublicBaseURL, c.MaxSizeMB)
}

type CloudinaryConfig struct {
	CloudName string `toml:"cloud_name"`
	APIKey    string `toml:"api_key"`
	APISecret string `toml:"api_secret"`
	Folder    string `toml:"folder"`
}

func (c CloudinaryConfig) String() string {
	return fmt.Sprintf("\n CloudName: %s\n Folder: %s\n Enabled: %t", c.CloudName, c.Folder, c.Enabled())
}

// Enabled reports whether all Cloudinary credentials are present.
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

func (c *Config) applyEnv() {
	setString(&c.AppEnv, "APP_ENV")
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		c.Server.AllowedOrigins = strings.Split(origins, ",")
	}

	setString(&c.Store.URL, "STORE_URL")
	setString(&c.Store.AnonKey, "STORE_ANON_KEY")
	setString(&c.Store.ServiceURL, "STORE_SERVICE_URL")
	setString(&c.Store.ServiceRoleKey, "STORE_SERVICE_ROLE_KEY")
	if v := os.Getenv("STORE_AUTO_MIGRATE"); v != "" {
		c.Store.AutoMigrate = v == "true" || v == "1"
	}

	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")

	setString(&c.Auth.JWTSecret, "JWT_SECRET")

	setString(&c.Upload.Dir, "UPLOAD_DIR")
	setString(&c.Upload.PublicBaseURL, "PUBLIC_BASE_URL")

	setString(&c.Cloudinary.CloudName, "CLOUDINARY_CLOUD_NAME")
	setString(&c.Cloudinary.APIKey, "CLOUDINARY_API_KEY")
	setString(&c.Cloudinary.APISecret, "CLOUDINARY_API_SECRET")
	setString(&c.Cloudinary.Folder, "CLOUDINARY_FOLDER")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
