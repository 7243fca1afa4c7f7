package grpc

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	pb "github.com/dmitrijs2005/authkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

// Context keys under which the interceptor publishes the verified claims
// for protected handlers.
const (
	UserIDKey   ctxKey = "userID"
	UsernameKey ctxKey = "username"
)

// protectedMethods lists the RPCs that require a valid access token.
var protectedMethods = map[string]bool{
	pb.AuthService_Profile_FullMethodName: true,
}

// accessTokenInterceptor is the access gate: for protected methods it
// requires a verifiable bearer token in the request metadata and rejects
// the call before the handler runs otherwise. The claims are trusted as-is;
// the user record is not re-fetched from storage, so a deleted account
// keeps access until its token expires.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		claims, err := s.users.VerifyToken(accessToken)
		if err != nil {
			// Expired, tampered and malformed tokens all collapse into
			// one unauthenticated outcome.
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, UserIDKey, claims.Subject)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)

	}

	return handler(ctx, req)
}
