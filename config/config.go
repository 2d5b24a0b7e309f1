package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Log      Log
	Database Database
	Supabase Supabase
	LLM      LLM
}

type Server struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
	StaticDir      string
}

type Log struct {
	Level  string
	Pretty bool
}

type Database struct {
	Driver      string // "postgres" or "sqlite"
	URL         string
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

// Supabase holds the identity service settings. AnonKey is public and is
// handed to the browser through /config; Key never leaves the server.
type Supabase struct {
	URL         string
	Key         string
	AnonKey     string
	HTTPTimeout time.Duration
}

type LLM struct {
	Provider     string // "groq", "openai" or "gemini"
	APIKey       string
	BaseURL      string
	Model        string
	GeminiAPIKey string
}

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	groqBaseURL = "https://api.groq.com/openai/v1"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("GIN_MODE", "release")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "require")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 10)
	viper.SetDefault("LLM_PROVIDER", ProviderGroq)
	viper.SetDefault("LLM_MODEL", "llama-3.1-8b-instant")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Server.AllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	config.Server.StaticDir = viper.GetString("STATIC_DIR")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Pretty = viper.GetBool("LOG_PRETTY")

	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.URL = viper.GetString("DATABASE_URL")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.AutoMigrate = viper.GetBool("DATABASE_AUTO_MIGRATE")

	config.Supabase.URL = strings.TrimRight(viper.GetString("SUPABASE_URL"), "/")
	config.Supabase.Key = viper.GetString("SUPABASE_KEY")
	config.Supabase.AnonKey = viper.GetString("SUPABASE_ANON_KEY")
	config.Supabase.HTTPTimeout = time.Duration(viper.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second

	config.LLM.Provider = strings.ToLower(viper.GetString("LLM_PROVIDER"))
	config.LLM.Model = viper.GetString("LLM_MODEL")
	config.LLM.BaseURL = viper.GetString("LLM_BASE_URL")
	config.LLM.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	switch config.LLM.Provider {
	case ProviderGroq:
		config.LLM.APIKey = viper.GetString("GROQ_API_KEY")
		if config.LLM.BaseURL == "" {
			config.LLM.BaseURL = groqBaseURL
		}
	case ProviderOpenAI:
		config.LLM.APIKey = viper.GetString("OPENAI_API_KEY")
	case ProviderGemini:
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", config.LLM.Provider)
	}
	switch config.Server.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("unknown GIN_MODE %q", config.Server.GinMode)
	}
	if config.Database.Driver != DriverPostgres && config.Database.Driver != DriverSQLite {
		return nil, fmt.Errorf("unknown DATABASE_DRIVER %q", config.Database.Driver)
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("llm_provider", config.LLM.Provider).
		Str("llm_model", config.LLM.Model).
		Bool("database_configured", config.Database.Configured()).
		Bool("supabase_configured", config.Supabase.Configured()).
		Msg("Config loaded")
	return &config, nil
}

// DSN builds a Postgres connection string. DATABASE_URL wins when set.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func (d Database) Configured() bool {
	if d.Driver == DriverSQLite {
		return d.URL != ""
	}
	return d.URL != "" || (d.Host != "" && d.User != "" && d.Name != "")
}

func (s Supabase) Configured() bool {
	return s.URL != "" && s.Key != ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
