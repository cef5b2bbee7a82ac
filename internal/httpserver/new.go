package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"billing-automation/pkg/log"
)

// Domain is a group of routes mounted on the root router.
type Domain struct {
	Name     string
	Register func(r gin.IRouter)
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Identity reported by / and the health probes
	service string
	version string
	message string

	features   func() map[string]any
	domains    []Domain
	onShutdown []func()
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Service string
	Version string
	Message string

	// Features reports which integrations are enabled; evaluated per request.
	Features func() map[string]any
	Domains  []Domain

	// OnShutdown runs after the listener has drained, e.g. to wait for
	// background webhook processing.
	OnShutdown []func()
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		service:     cfg.Service,
		version:     cfg.Version,
		message:     cfg.Message,
		features:    cfg.Features,
		domains:     cfg.Domains,
		onShutdown:  cfg.OnShutdown,
	}
	if srv.version == "" {
		srv.version = DefaultVersion
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.service == "" {
		return errors.New("service name is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
