// Package grpc exposes the authentication service over gRPC and hosts the
// two gate policies the transport enforces: the login gate (credential
// verification in the Login handler) and the access gate (bearer-token
// interceptor for protected methods).
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	pb "github.com/dmitrijs2005/authkeeper/internal/proto"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
	"google.golang.org/grpc"
)

// userSvc is the slice of UserService the transport needs.
type userSvc interface {
	Register(ctx context.Context, username, email, password string) (*models.Principal, error)
	Login(ctx context.Context, username, password string) (*services.AuthResult, error)
	VerifyToken(token string) (*auth.Claims, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address string
	users   userSvc
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us *services.UserService) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterAuthServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
