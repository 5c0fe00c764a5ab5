package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa toda la configuración del servicio. Se arma desde env vars
// (opcionalmente cargadas desde .env).
type Config struct {
	App      App
	Log      Log
	DB       DB
	Redis    Redis
	Auth     Auth
	Profiles Profiles
	Search   Search
	HTTP     HTTP
}

type App struct {
	Name string
	Env  string
	Port string
}

type Log struct {
	Level  string
	Format string
}

type DB struct {
	DSN string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Auth struct {
	IdentityBaseURL string
	IdentityAPIKey  string
	JWTSecret       string
	CacheTTL        time.Duration
}

// Profiles configura de dónde lee/escribe el formulario.
// Si BaseURL está vacío, el formulario usa el servicio in-process.
type Profiles struct {
	APIBaseURL string
}

// Search son los valores "públicos" que consume la búsqueda de productos.
type Search struct {
	OpenAIAPIKey       string
	OpenAIBaseURL      string
	OpenAIModel        string
	AmazonAffiliateTag string
	RequestsPerSecond  float64
	CacheTTL           time.Duration
}

type HTTP struct {
	RateLimitRPS       int
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
}

// Load lee .env (si existe) y después el entorno.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv arma la Config sin tocar archivos; útil en tests.
func FromEnv() Config {
	return Config{
		App: App{
			Name: getString("APP_NAME", "bark-advisor"),
			Env:  getString("APP_ENV", "development"),
			Port: getString("PORT", "8080"),
		},
		Log: Log{
			Level:  getString("LOG_LEVEL", "info"),
			Format: getString("LOG_FORMAT", "text"),
		},
		DB: DB{
			DSN: getString("DB_DSN", ""),
		},
		Redis: Redis{
			Addr:     getString("REDIS_ADDR", ""),
			Password: getString("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Auth: Auth{
			IdentityBaseURL: getString("IDENTITY_BASE_URL", ""),
			IdentityAPIKey:  getString("IDENTITY_API_KEY", ""),
			JWTSecret:       getString("JWT_SECRET", ""),
			CacheTTL:        getDuration("AUTH_CACHE_TTL", 5*time.Minute),
		},
		Profiles: Profiles{
			APIBaseURL: getString("PROFILE_API_BASE_URL", ""),
		},
		Search: Search{
			OpenAIAPIKey:       firstNonEmpty(os.Getenv("OPENAI_API_KEY"), os.Getenv("NEXT_PUBLIC_OPENAI_API_KEY")),
			OpenAIBaseURL:      getString("OPENAI_BASE_URL", "https://api.openai.com"),
			OpenAIModel:        getString("OPENAI_MODEL", "gpt-4o-mini"),
			AmazonAffiliateTag: getString("AMAZON_AFFILIATE_TAG", ""),
			RequestsPerSecond:  getFloat("OPENAI_RPS", 2),
			CacheTTL:           getDuration("SEARCH_CACHE_TTL", 10*time.Minute),
		},
		HTTP: HTTP{
			RateLimitRPS:       getInt("RATE_LIMIT_RPS", 20),
			CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			ReadTimeout:        getDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:       getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout:    getDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
	}
}

// Addr devuelve la dirección de escucha (":8080").
func (c Config) Addr() string {
	p := strings.TrimSpace(c.App.Port)
	if strings.HasPrefix(p, ":") {
		return p
	}
	return ":" + p
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

func getString(key, def string) string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func getInt(key string, def int) int {
	v := getString(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getFloat(key string, def float64) float64 {
	v := getString(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// getDuration acepta "90s", "5m" o segundos enteros ("30").
func getDuration(key string, def time.Duration) time.Duration {
	v := getString(key, "")
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}

func getList(key string, def []string) []string {
	v := getString(key, "")
	if v == "" {
		return def
	}
	out := make([]string, 0)
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
