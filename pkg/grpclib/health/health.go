package health

import (
	"context"
	"net"

	"google.golang.org/grpc"
	healthgrpc "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server exposes the standard gRPC health service for long-running commands.
type Server struct {
	health *healthgrpc.Server
	grpc   *grpc.Server
}

// NewServer creates a health server backed by its own grpc.Server.
func NewServer(opts ...grpc.ServerOption) *Server {
	s := &Server{
		health: healthgrpc.NewServer(),
		grpc:   grpc.NewServer(opts...),
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	return s
}

// SetServing marks serviceName as SERVING.
func (s *Server) SetServing(serviceName string) {
	s.health.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
}

// SetNotServing marks serviceName as NOT_SERVING.
func (s *Server) SetNotServing(serviceName string) {
	s.health.SetServingStatus(serviceName, healthpb.HealthCheckResponse_NOT_SERVING)
}

// Check returns the current status of serviceName ("" for the whole server).
func (s *Server) Check(ctx context.Context, serviceName string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: serviceName})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

// Serve listens on address and blocks until ctx is done or the listener fails.
func (s *Server) Serve(ctx context.Context, address string) error {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpc.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-errCh
		return nil
	case err := <-errCh:
		return err
	}
}

// Shutdown flips every service to NOT_SERVING and stops the grpc server.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
