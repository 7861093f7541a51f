package graph

import (
	"context"

	"bloghub/internal/microservices/http-api/dto"
	"bloghub/internal/microservices/http-api/middleware"
	"bloghub/internal/microservices/http-api/service"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

func (r *Resolver) Users(ctx context.Context) ([]*userResolver, error) {
	users, err := r.svc.Users.List(ctx)
	if err != nil {
		return nil, r.queryFailed("users", err)
	}
	out := make([]*userResolver, len(users))
	for i := range users {
		out[i] = r.user(&users[i])
	}
	return out, nil
}

func (r *Resolver) User(ctx context.Context, args struct{ ID graphql.ID }) (*userResolver, error) {
	user, err := r.svc.Users.Get(ctx, string(args.ID))
	if err != nil {
		if service.IsNotFound(err) {
			return nil, nil
		}
		return nil, r.queryFailed("user", err)
	}
	return r.user(user), nil
}

// Me resolves the caller, or null for anonymous requests.
func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, nil
	}
	return r.User(ctx, struct{ ID graphql.ID }{ID: graphql.ID(userID)})
}

func (r *Resolver) SignUp(ctx context.Context, args struct {
	Email    string
	Password string
	Name     string
}) *authResponse {
	result, err := r.svc.Auth.SignUp(ctx, dto.SignUpRequest{
		Email:    args.Email,
		Password: args.Password,
		Name:     args.Name,
	})
	if err != nil {
		return &authResponse{envelope: r.fail(ctx, "signUp", err)}
	}
	return r.signedIn(ctx, "signUp", result)
}

func (r *Resolver) SignIn(ctx context.Context, args struct {
	Email    string
	Password string
}) *authResponse {
	result, err := r.svc.Auth.SignIn(ctx, dto.SignInRequest{
		Email:    args.Email,
		Password: args.Password,
	})
	if err != nil {
		return &authResponse{envelope: r.fail(ctx, "signIn", err)}
	}
	return r.signedIn(ctx, "signIn", result)
}

// signedIn sets the session cookie and returns the token for header-based
// clients.
func (r *Resolver) signedIn(ctx context.Context, operation string, result *dto.AuthResult) *authResponse {
	middleware.SessionFromContext(ctx).SetAuthToken(result.Token)
	token := result.Token
	return &authResponse{
		envelope: r.succeed(operation, ""),
		token:    &token,
		user:     r.user(result.User),
	}
}

// SignOut always clears the cookie. A failed revocation is only logged; the
// token then stays valid until it expires.
func (r *Resolver) SignOut(ctx context.Context) *authResponse {
	session := middleware.SessionFromContext(ctx)
	session.ClearAuthToken()
	if err := r.svc.Auth.SignOut(ctx, session.Token()); err != nil {
		r.logger.Warn("token revocation failed", zap.String("operation", "signOut"), zap.Error(err))
	}
	return &authResponse{envelope: r.succeed("signOut", "Successfully signed out")}
}
