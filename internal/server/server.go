package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/tashifkhan/LeetCode-Stats-API/internal/config"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/leetcode"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/middleware"

	badgeHttp "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/badge/delivery/http"
	badgeService "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/badge/service"

	contestHttp "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/contest/delivery/http"
	contestService "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/contest/service"

	docsHttp "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/docs/delivery/http"

	profileHttp "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/profile/delivery/http"
	profileService "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/profile/service"

	statsHttp "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/stats/delivery/http"
	statsService "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/stats/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	engine *gin.Engine
	cfg    *config.Config
}

func New(cfg *config.Config) *Server {
	client := leetcode.NewClient(cfg.LeetCodeAPIURL, cfg.UpstreamTimeout)

	statsSvc := statsService.NewStatsService(client)
	statsHandler := statsHttp.NewStatsHandler(statsSvc)

	contestSvc := contestService.NewContestService(client)
	contestHandler := contestHttp.NewContestHandler(contestSvc)

	profileSvc := profileService.NewProfileService(client)
	profileHandler := profileHttp.NewProfileHandler(profileSvc)

	badgeSvc := badgeService.NewBadgeService(client)
	badgeHandler := badgeHttp.NewBadgeHandler(badgeSvc)

	docsHandler := docsHttp.NewDocsHandler()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())

	router.GET("/", docsHandler.GetDocs)
	router.GET("/:username", statsHandler.GetStats)
	router.GET("/:username/contests", contestHandler.GetContestRanking)
	router.GET("/:username/profile", profileHandler.GetProfile)
	router.GET("/:username/badges", badgeHandler.GetBadges)

	return &Server{engine: router, cfg: cfg}
}

// Handler exposes the underlying engine for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if allowedOrigins == "" || allowedOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(allowedOrigins, ",")
		corsCfg.AllowCredentials = true
	}

	router.Use(cors.New(corsCfg))
}
