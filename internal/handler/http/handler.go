package http

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
)

type Handler struct {
	services *service.Services

	cookie  config.App
	server  config.Server
	traceID *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, appCfg config.App, serverCfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cookie:   appCfg,
		server:   serverCfg,
		traceID:  utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
