package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultJWTSecret is only acceptable outside prod.
	DefaultJWTSecret = "dev-secret-change-me"

	ProviderCloudinary = "cloudinary"
	ProviderS3         = "s3"
)

type Config struct {
	Port string

	// Env is "dev" (default) or "prod". When "prod", JWT_SECRET must be set and not the default.
	Env      string
	LogLevel string

	// DatabaseURL is a postgres DSN. DBName, when set, replaces the database in it.
	DatabaseURL    string
	DBName         string
	DBMaxOpenConns int
	DBMaxIdleConns int
	EnsureSchema   bool

	JWTSecret string
	// JWTTTL is the token lifetime (default 1h).
	JWTTTL time.Duration

	// TLSCertFile and TLSKeyFile enable HTTPS when both are set.
	TLSCertFile string
	TLSKeyFile  string

	// CORSAllowedOrigins is the comma-separated CORS_ALLOWED_ORIGINS list. "*" allows any origin.
	CORSAllowedOrigins []string

	// MaxUploadBytes caps the multipart body of the image route.
	MaxUploadBytes int64

	AssetProvider    string
	CloudinaryURL    string
	CloudinaryFolder string

	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string
}

// Load reads the optional dotenv file at path, then the environment, then defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("read config file %s: %w", path, err)
			}
		}
	}

	cfg := Config{
		Port:     v.GetString("PORT"),
		Env:      strings.ToLower(v.GetString("ENV")),
		LogLevel: v.GetString("LOG_LEVEL"),

		DatabaseURL:    v.GetString("DATABASE_URL"),
		DBName:         v.GetString("DB_NAME"),
		DBMaxOpenConns: positiveInt(v.GetInt("DB_MAX_OPEN_CONNS"), 25),
		DBMaxIdleConns: positiveInt(v.GetInt("DB_MAX_IDLE_CONNS"), 5),
		EnsureSchema: v.GetBool("ENSURE_SCHEMA"),

		JWTSecret: v.GetString("JWT_SECRET"),
		JWTTTL:    v.GetDuration("JWT_TTL"),

		TLSCertFile: v.GetString("TLS_CERT_FILE"),
		TLSKeyFile:  v.GetString("TLS_KEY_FILE"),

		CORSAllowedOrigins: parseCORSOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),

		MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),

		AssetProvider:    strings.ToLower(v.GetString("ASSET_PROVIDER")),
		CloudinaryURL:    v.GetString("CLOUDINARY_URL"),
		CloudinaryFolder: v.GetString("CLOUDINARY_FOLDER"),

		S3Bucket:        v.GetString("S3_BUCKET"),
		S3Region:        v.GetString("S3_REGION"),
		S3Endpoint:      v.GetString("S3_ENDPOINT"),
		S3AccessKey:     v.GetString("S3_ACCESS_KEY"),
		S3SecretKey:     v.GetString("S3_SECRET_KEY"),
		S3PublicBaseURL: v.GetString("S3_PUBLIC_BASE_URL"),
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("ENSURE_SCHEMA", true)
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("JWT_TTL", time.Hour)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
	v.SetDefault("ASSET_PROVIDER", ProviderCloudinary)
	v.SetDefault("CLOUDINARY_FOLDER", "projects")
	v.SetDefault("S3_REGION", "us-east-1")
}

// IsProd reports whether the service runs with production settings.
func (c Config) IsProd() bool {
	return c.Env == "prod"
}

// Validate checks settings that cannot be defaulted.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.IsProd() && c.JWTSecret == DefaultJWTSecret {
		return errors.New("JWT_SECRET must be changed from the default in prod")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return errors.New("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}
	switch c.AssetProvider {
	case ProviderCloudinary:
		if c.CloudinaryURL == "" {
			return errors.New("CLOUDINARY_URL is required for the cloudinary asset provider")
		}
	case ProviderS3:
		if c.S3Bucket == "" {
			return errors.New("S3_BUCKET is required for the s3 asset provider")
		}
	default:
		return fmt.Errorf("unknown ASSET_PROVIDER %q", c.AssetProvider)
	}
	return nil
}

// parseCORSOrigins splits a comma-separated list of origins and trims spaces. Empty strings are omitted.
func parseCORSOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func positiveInt(n, fallback int) int {
	if n > 0 {
		return n
	}
	return fallback
}
