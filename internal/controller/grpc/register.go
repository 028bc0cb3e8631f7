package grpccontroller

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name reported by the health service for the log store.
const ServiceName = "unilog.LogStore"

func RegisterServices(hs *health.Server) func(s *grpc.Server) {
	return func(s *grpc.Server) {
		healthpb.RegisterHealthServer(s, hs)
		reflection.Register(s)
	}
}
