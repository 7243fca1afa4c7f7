package service

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	pb "github.com/dmitrijs2005/authkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// AuthKeeperClientService is a thin gRPC client for the AuthKeeper server.
// After a successful Login it holds the issued access token and attaches it
// to every subsequent call.
type AuthKeeperClientService struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthServiceClient
	accessToken string
}

func (s *AuthKeeperClientService) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.accessToken != "" {
		md := metadata.New(map[string]string{common.AccessTokenHeaderName: s.accessToken})
		ctx = metadata.NewOutgoingContext(ctx, md)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewAuthKeeperClientService(endpointURL string) (*AuthKeeperClientService, error) {
	return &AuthKeeperClientService{endpointURL: endpointURL}, nil
}

func (s *AuthKeeperClientService) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthServiceClient(conn)
	return nil
}

func (s *AuthKeeperClientService) Register(ctx context.Context, username string, email string, password []byte) error {

	req := &pb.RegisterUserRequest{Username: username, Email: email, Password: string(password)}

	_, err := s.client.RegisterUser(ctx, req)

	if err != nil {
		return err
	}

	return nil

}

func (s *AuthKeeperClientService) Login(ctx context.Context, username string, password []byte) error {

	req := &pb.LoginRequest{Username: username, Password: string(password)}

	resp, err := s.client.Login(ctx, req)

	if err != nil {
		return err
	}

	s.accessToken = resp.AccessToken

	return nil

}

func (s *AuthKeeperClientService) Profile(ctx context.Context) (*Identity, error) {

	resp, err := s.client.Profile(ctx, &pb.ProfileRequest{})
	if err != nil {
		return nil, err
	}

	return &Identity{UserID: resp.GetUserId(), Username: resp.GetUsername()}, nil

}

func (s *AuthKeeperClientService) Ping(ctx context.Context) error {
	_, err := s.client.Ping(ctx, &pb.PingRequest{})
	return err
}

func (s *AuthKeeperClientService) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
