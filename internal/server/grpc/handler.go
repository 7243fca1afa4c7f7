package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	pb "github.com/dmitrijs2005/authkeeper/internal/proto"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toUserInfo(p *models.Principal) *pb.UserInfo {
	return &pb.UserInfo{Id: p.ID, Username: p.UserName, Email: p.Email}
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	s.logger.Info(ctx, "Registration request")

	principal, err := s.users.Register(ctx, req.GetUsername(), req.GetEmail(), req.GetPassword())

	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateUsername):
			return nil, status.Error(codes.AlreadyExists, "username already taken")
		case errors.Is(err, common.ErrDuplicateEmail):
			return nil, status.Error(codes.AlreadyExists, "email already taken")
		default:
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	s.logger.Info(ctx, "Registered", "username", principal.UserName)
	return &pb.RegisterUserResponse{User: toUserInfo(principal)}, nil

}

// Login is the login gate: a failed authentication never reaches further
// than this handler, and the caller sees one generic message whether the
// username was unknown or the password wrong.
func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	result, err := s.users.Login(ctx, req.GetUsername(), req.GetPassword())

	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return nil, status.Error(codes.Unauthenticated, "invalid username or password")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.LoginResponse{AccessToken: result.AccessToken, User: toUserInfo(result.Principal)}, nil

}

// Profile reads the identity the access gate placed into the context.
func (s *GRPCServer) Profile(ctx context.Context, req *pb.ProfileRequest) (*pb.ProfileResponse, error) {

	userID, _ := ctx.Value(UserIDKey).(string)
	username, _ := ctx.Value(UsernameKey).(string)

	if userID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing identity")
	}

	return &pb.ProfileResponse{UserId: userID, Username: username}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}
