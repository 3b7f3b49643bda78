package handler

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// SessionServiceName is the health service name reported for the session.
const SessionServiceName = "pizzeria.Session"

// GRPCHandler exposes the standard gRPC health service for the session.
type GRPCHandler struct {
	health *health.Server
}

func NewGRPCHandler() *GRPCHandler {
	h := &GRPCHandler{health: health.NewServer()}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(SessionServiceName, healthpb.HealthCheckResponse_SERVING)
	return h
}

func (h *GRPCHandler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown marks every service NOT_SERVING ahead of a graceful stop.
func (h *GRPCHandler) Shutdown() {
	h.health.Shutdown()
}
