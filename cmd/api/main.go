package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"findash/pkg/api/cachectl"
	"findash/pkg/api/company"
	apiconfig "findash/pkg/api/config"
	"findash/pkg/api/insights"
	"findash/pkg/api/symbols"
	"findash/pkg/cache"
	"findash/pkg/config"
	"findash/pkg/core/agent"
	"findash/pkg/core/provider"
	"findash/pkg/core/recommend"
	"findash/pkg/core/store"
	"findash/pkg/logger"
)

// listingPage is the exchange listing scraped for the ticker search box.
const listingPage = "https://stockanalysis.com/stocks/"

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.Env)
	ctx := context.Background()

	// TTL cache: Redis when configured, in-memory otherwise.
	var cacheStore cache.Store
	if cfg.RedisAddr != "" {
		redisStore, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, "findash")
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, using in-memory cache")
			cacheStore = cache.NewMemory()
		} else {
			defer redisStore.Close()
			cacheStore = redisStore
		}
	} else {
		cacheStore = cache.NewMemory()
	}

	// Snapshot store: Postgres primary when configured, file fallback always.
	if cfg.DatabaseURL != "" {
		if err := store.InitDB(ctx, cfg.DatabaseURL); err != nil {
			log.Warn().Err(err).Msg("database unavailable, snapshots fall back to files")
		} else {
			defer store.Close()
		}
	}
	snapshots := store.NewSnapshotStore(store.GetPool(), cfg.SnapshotDir)

	// Agent manager from config/models.yaml.
	configData, err := os.ReadFile(cfg.ModelsConfig)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.ModelsConfig).Msg("models config missing, using defaults")
	}
	var agentCfg agent.Config
	if err := yaml.Unmarshal(configData, &agentCfg); err != nil {
		log.Warn().Err(err).Msg("models config malformed, using defaults")
	}
	if agentCfg.ActiveProvider == "" {
		agentCfg.ActiveProvider = "gemini"
	}
	agentMgr := agent.NewManager(agentCfg)

	client := provider.New(cfg.ProviderBaseURL, cfg.ProviderAPIKey, cfg.ProviderRPS, cacheStore, cfg.CacheTTL, log)
	recommender := recommend.New(agentMgr, cfg.AIEnabled, log)

	// Config endpoints
	configHandler := apiconfig.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	// Company data endpoints
	company.InitHandler(client, snapshots, log)
	http.HandleFunc("/api/company/metrics", company.HandleCompanyMetrics)

	// Recommendation endpoints
	insights.InitHandler(recommender, log)
	http.HandleFunc("/api/recommendations", insights.HandleRecommendations)
	http.HandleFunc("/api/components/importance", insights.HandleComponentImportance)

	// Symbol search endpoints
	symbols.InitHandler(listingPage, log)
	http.HandleFunc("/api/symbols/search", symbols.HandleSearch)

	// Cache endpoints
	cachectl.InitHandler(cacheStore, log)
	http.HandleFunc("/api/cache/stats", cachectl.HandleStats)
	http.HandleFunc("/api/cache/clear", cachectl.HandleClear)

	log.Info().
		Str("port", cfg.Port).
		Str("provider", agentMgr.ActiveProviderName()).
		Bool("ai_enabled", cfg.AIEnabled).
		Msg("api server starting")

	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
