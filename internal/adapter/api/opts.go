package api

import (
	"log/slog"
	"net"
	"strconv"

	"github.com/okorolev/liftlog_backend/internal/adapter/storage"
	"github.com/okorolev/liftlog_backend/internal/app/auth"
	"github.com/okorolev/liftlog_backend/internal/app/catalog"
	"github.com/okorolev/liftlog_backend/internal/app/statsapp"
	"github.com/okorolev/liftlog_backend/internal/app/unitofwork"
	"github.com/okorolev/liftlog_backend/internal/app/workoutapp"
)

type Option func(*Server)

func Addr(host string, port int) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort(host, strconv.Itoa(port))
	}
}

func Logger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

func DBContext(db storage.DB) Option {
	return func(s *Server) {
		s.db = db
	}
}

func AuthService(service *auth.Service) Option {
	return func(s *Server) {
		s.authService = service
	}
}

func CatalogService(service *catalog.Service) Option {
	return func(s *Server) {
		s.catalogService = service
	}
}

func WorkoutService(service *workoutapp.Service) Option {
	return func(s *Server) {
		s.workoutService = service
	}
}

func StatsService(service *statsapp.Service) Option {
	return func(s *Server) {
		s.statsService = service
	}
}

func MessageBus(bus unitofwork.MessageBus) Option {
	return func(s *Server) {
		s.msgBus = bus
	}
}
