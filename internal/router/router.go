package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "bark-advisor/docs"
	"bark-advisor/internal/adapters/profileapi"
	mem "bark-advisor/internal/adapters/storage/memory"
	pg "bark-advisor/internal/adapters/storage/postgres"
	"bark-advisor/internal/domain/dogprofiles"
	"bark-advisor/internal/middleware"
	"bark-advisor/internal/platform/cache"
	"bark-advisor/internal/platform/logger"
	"bark-advisor/internal/ports/auth"
	"bark-advisor/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	Logger       logger.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: cache para resultados de búsqueda. nil => sin cache.
	Cache       cache.Cache
	SearchTTL   time.Duration
	Recommender web.Recommender // nil => búsqueda deshabilitada

	AffiliateTag string

	// Si se define, el formulario habla con la API de perfiles por HTTP
	// en vez de usar el service in-process.
	ProfileAPIBaseURL   string
	ProfileAPITransport http.RoundTripper

	RateLimitRPS       int // 0 => sin límite
	CORSAllowedOrigins []string
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.DebugUserHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if opts.RateLimitRPS > 0 {
		r.Use(httprate.LimitByIP(opts.RateLimitRPS, time.Second))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var repo dogprofiles.Repository
	if opts.DB != nil {
		repo = pg.NewDogProfilesRepo(opts.DB)
	} else {
		repo = mem.NewDogProfileRepo()
	}

	profilesSvc := dogprofiles.NewService(repo)
	dogprofiles.RegisterRoutes(r, profilesSvc, log.With(map[string]any{"module": "dogprofiles"}))

	// Cliente de datos del formulario
	var profiles web.ProfileClient = web.NewLocalProfiles(profilesSvc)
	if opts.ProfileAPIBaseURL != "" {
		remote, err := profileapi.New(opts.ProfileAPIBaseURL, 0, opts.ProfileAPITransport)
		if err != nil {
			return nil, err
		}
		profiles = remote
	}

	webLog := log.With(map[string]any{"module": "web"})
	pages, err := web.NewHandler(
		web.NewProfileForm(profiles, webLog),
		web.NewProductSearch(web.SearchOptions{
			Recommender:  opts.Recommender,
			Profiles:     profiles,
			Cache:        opts.Cache,
			CacheTTL:     opts.SearchTTL,
			AffiliateTag: opts.AffiliateTag,
			Log:          webLog,
		}),
		webLog,
	)
	if err != nil {
		return nil, err
	}
	pages.RegisterRoutes(r)

	return r, nil
}
