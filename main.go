package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"BharatYield/internal/advisor"
	"BharatYield/internal/auth"
	"BharatYield/internal/calc/batch"
	"BharatYield/internal/calc/profit"
	"BharatYield/internal/calc/report"
	"BharatYield/internal/calc/validate"
	"BharatYield/internal/community"
	"BharatYield/internal/config"
	"BharatYield/internal/logger"
	"BharatYield/internal/profile"
	"BharatYield/internal/repo"
	"BharatYield/internal/schemes"
	"BharatYield/internal/weather"
)

var wg sync.WaitGroup

// Deps are the collaborators HandleList wires into the router.
type Deps struct {
	Config  *config.Config
	Log     *zap.Logger
	Users   repo.UserStore
	Weather weather.Fetcher
	Advisor *advisor.Service
}

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, d Deps) {
	cfg := d.Config
	authEnv := &auth.Authenv{
		JWTkey:         []byte(cfg.TokenKey),
		Users:          d.Users,
		Log:            d.Log,
		InsecureCookie: !cfg.TLSEnabled(),
	}
	profileH := &profile.ProfileHandler{Users: d.Users, Log: d.Log}

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.LoginHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")
	api.HandleFunc("/logout", authEnv.LogoutHandler).Methods("POST")

	validateH := &validate.Handler{}
	profitH := &profit.Handler{}
	weatherH := &weather.Handler{Client: d.Weather, Log: d.Log}
	schemesH := &schemes.Handler{Directory: schemes.Default()}
	communityH := &community.Handler{}

	api.HandleFunc("/validate", validateH.Check).Methods("POST")
	api.HandleFunc("/tools/profit/crops", profitH.Crops).Methods("GET")
	api.HandleFunc("/weather", weatherH.Get).Methods("GET")
	api.HandleFunc("/weather/locations", weatherH.Locations).Methods("GET")
	api.HandleFunc("/schemes", schemesH.List).Methods("GET")
	api.HandleFunc("/schemes/categories", schemesH.Categories).Methods("GET")
	api.HandleFunc("/community/posts", communityH.List).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")

	reportH := &report.Handler{}
	batchH := &batch.Handler{Log: d.Log}
	advisorH := &advisor.Handler{Service: d.Advisor}

	secureApi.HandleFunc("/tools/profit/calc", profitH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/profit/report", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/profit/import", batchH.Import).Methods("POST")
	secureApi.HandleFunc("/tools/profit/export", batchH.Export).Methods("POST")
	secureApi.HandleFunc("/advisor/analyze", advisorH.Analyze).Methods("POST")
	secureApi.HandleFunc("/advisor/soil-card", advisorH.SoilCard).Methods("POST")
}

// openUsers picks Postgres when configured and the seeded in-memory store
// otherwise. The returned func releases the store.
func openUsers(ctx context.Context, cfg *config.Config, log *zap.Logger) (repo.UserStore, func(), error) {
	if cfg.DatabaseURL == "" {
		store := repo.NewMemoryUserStore()
		n, err := repo.SeedDemoUsers(ctx, store, auth.HashPassword)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using in-memory user store", zap.Int("demo_users", n))
		return store, func() {}, nil
	}
	db, err := repo.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	pg := repo.NewPostgresUserDB(db)
	if err := pg.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return pg, func() { db.Close() }, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "console").Fatal("load config", zap.Error(err))
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	users, closeUsers, err := openUsers(ctx, cfg, log)
	if err != nil {
		log.Fatal("open user store", zap.Error(err))
	}
	defer closeUsers()

	var cache weather.Cache
	if cfg.RedisAddr != "" {
		rc := weather.NewRedisCache(cfg.RedisAddr)
		defer rc.Close()
		cache = rc
	}
	weatherClient := weather.NewClient(cfg.OpenMeteoURL, cache, cfg.WeatherCacheTTL, log)

	var gen advisor.Generator
	if cfg.GeminiAPIKey != "" {
		g, err := advisor.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn("gemini unavailable, serving fallback advisory", zap.Error(err))
		} else {
			defer g.Close()
			gen = g
		}
	}

	router := mux.NewRouter()
	HandleList(router, Deps{
		Config:  cfg,
		Log:     log,
		Users:   users,
		Weather: weatherClient,
		Advisor: advisor.NewService(gen, log),
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           CORS(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("starting server", zap.String("addr", cfg.HTTPAddr), zap.Bool("tls", cfg.TLSEnabled()))
		var err error
		if cfg.TLSEnabled() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	wg.Wait()
	log.Info("server stopped")
}
