package server

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/toughlife/community-backend/internal/config"
	"github.com/toughlife/community-backend/internal/database"
	"github.com/toughlife/community-backend/internal/handlers"
)

type Server struct {
	Router *gin.Engine
	DB     *database.Database
	Config *config.Config
}

func New(cfg *config.Config) (*Server, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db := &database.Database{}
	if err := db.Connect(cfg.DatabaseURL); err != nil {
		return nil, err
	}

	authH := handlers.NewAuthHandler(db)
	chatH := handlers.NewChatHandler(db)

	router := gin.Default()
	APIEndpoints(router, db, authH, chatH)

	return &Server{
		Router: router,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	log.Printf("Server starting on port %s", s.Config.Port)
	if err := s.Router.Run(":" + s.Config.Port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
