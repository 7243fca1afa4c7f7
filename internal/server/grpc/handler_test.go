package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	pb "github.com/dmitrijs2005/authkeeper/internal/proto"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeUser struct {
	regResp *models.Principal
	regErr  error

	loginResp *services.AuthResult
	loginErr  error

	verifyResp *auth.Claims
	verifyErr  error
}

func (f *fakeUser) Register(ctx context.Context, username, email, password string) (*models.Principal, error) {
	return f.regResp, f.regErr
}
func (f *fakeUser) Login(ctx context.Context, username, password string) (*services.AuthResult, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUser) VerifyToken(token string) (*auth.Claims, error) {
	return f.verifyResp, f.verifyErr
}

// ---- helpers ----

func newServer(u userSvc) *GRPCServer {
	return &GRPCServer{
		address: "127.0.0.1:0",
		users:   u,
		logger:  nopLogger{},
	}
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeUser{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestRegisterUser_OK(t *testing.T) {
	u := &fakeUser{regResp: &models.Principal{ID: "42", UserName: "alice", Email: "a@example.com"}}
	s := newServer(u)
	resp, err := s.RegisterUser(context.Background(), &pb.RegisterUserRequest{
		Username: "alice", Email: "a@example.com", Password: "pw",
	})
	if err != nil {
		t.Fatalf("RegisterUser error: %v", err)
	}
	if resp.GetUser().GetId() != "42" || resp.GetUser().GetUsername() != "alice" {
		t.Fatalf("unexpected user: %+v", resp.GetUser())
	}
}

func TestRegisterUser_Duplicates(t *testing.T) {
	s := newServer(&fakeUser{regErr: common.ErrDuplicateUsername})
	_, err := s.RegisterUser(context.Background(), &pb.RegisterUserRequest{Username: "u"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "username already taken" {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}

	s2 := newServer(&fakeUser{regErr: common.ErrDuplicateEmail})
	_, err = s2.RegisterUser(context.Background(), &pb.RegisterUserRequest{Username: "u"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "email already taken" {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}
}

func TestRegisterUser_InternalOnError(t *testing.T) {
	u := &fakeUser{regErr: errors.New("db down")}
	s := newServer(u)
	_, err := s.RegisterUser(context.Background(), &pb.RegisterUserRequest{Username: "u"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
	// storage details must not leak to the caller
	if status.Convert(err).Message() != "internal error" {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}
}

func TestLogin_OK(t *testing.T) {
	u := &fakeUser{loginResp: &services.AuthResult{
		AccessToken: "A",
		Principal:   &models.Principal{ID: "1", UserName: "alice", Email: "a@example.com"},
	}}
	s := newServer(u)
	resp, err := s.Login(context.Background(), &pb.LoginRequest{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.GetAccessToken() != "A" || resp.GetUser().GetUsername() != "alice" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLogin_UnauthenticatedAndInternal(t *testing.T) {
	s := newServer(&fakeUser{loginErr: common.ErrInvalidCredentials})
	_, err := s.Login(context.Background(), &pb.LoginRequest{Username: "u", Password: "x"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "invalid username or password" {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}

	s2 := newServer(&fakeUser{loginErr: errors.New("boom")})
	_, err = s2.Login(context.Background(), &pb.LoginRequest{Username: "u", Password: "x"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestProfile_OK(t *testing.T) {
	s := newServer(&fakeUser{})
	ctx := context.WithValue(context.Background(), UserIDKey, "user-1")
	ctx = context.WithValue(ctx, UsernameKey, "alice")
	resp, err := s.Profile(ctx, &pb.ProfileRequest{})
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if resp.GetUserId() != "user-1" || resp.GetUsername() != "alice" {
		t.Fatalf("unexpected profile: %+v", resp)
	}
}

func TestProfile_ContextMissingUserID(t *testing.T) {
	s := newServer(&fakeUser{})
	_, err := s.Profile(context.Background(), &pb.ProfileRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}
