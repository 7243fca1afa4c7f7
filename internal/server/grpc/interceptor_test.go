package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	pb "github.com/dmitrijs2005/authkeeper/internal/proto"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestInterceptor_PublicMethod_AllowsWithoutToken(t *testing.T) {
	s := newServer(&fakeUser{verifyErr: common.ErrTokenMalformed})

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_Login_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_Profile_MissingToken(t *testing.T) {
	s := newServer(&fakeUser{})

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_Profile_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_Profile_InvalidToken(t *testing.T) {
	s := newServer(&fakeUser{verifyErr: common.ErrTokenExpired})

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: "not-a-valid-jwt",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_Profile_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "invalid token" {
		t.Fatalf("expected 'invalid token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_Profile_ValidToken_SetsIdentity(t *testing.T) {
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-123"},
		Username:         "alice",
	}
	s := newServer(&fakeUser{verifyResp: claims})

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: "some-token",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_Profile_FullMethodName}

	var gotUserID, gotUsername any
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		gotUserID = ctx.Value(UserIDKey)
		gotUsername = ctx.Value(UsernameKey)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if gotUserID != "user-123" {
		t.Fatalf("user id not propagated in context: got %v", gotUserID)
	}
	if gotUsername != "alice" {
		t.Fatalf("username not propagated in context: got %v", gotUsername)
	}
}
