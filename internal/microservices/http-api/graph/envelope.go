package graph

import (
	"context"

	"bloghub/internal/microservices/http-api/dto"
	"bloghub/internal/microservices/http-api/middleware"
	"bloghub/internal/microservices/http-api/service"

	"go.uber.org/zap"
)

// envelope supplies the code, success and message fields shared by every
// mutation response type.
type envelope struct {
	resp dto.MutationResponse
}

func (e envelope) Code() int32     { return int32(e.resp.Code) }
func (e envelope) Success() bool   { return e.resp.Success }
func (e envelope) Message() string { return e.resp.Message }

func (r *Resolver) succeed(operation, message string) envelope {
	resp := dto.NewSuccessResponse(message)
	r.metrics.ObserveMutation(operation, resp.Code.String())
	return envelope{resp: resp}
}

// fail classifies err into an error envelope. Internal errors are logged
// since their detail only reaches the client as a message.
func (r *Resolver) fail(ctx context.Context, operation string, err error) envelope {
	classified := service.HandleDataAccessError(err)
	if classified.Code == dto.CodeInternalServerError {
		fields := []zap.Field{zap.String("operation", operation), zap.Error(err)}
		if userID, ok := middleware.UserIDFromContext(ctx); ok {
			fields = append(fields, zap.String("user_id", userID))
		}
		r.logger.Error("mutation failed", fields...)
	}
	r.metrics.ObserveMutation(operation, classified.Code.String())
	return envelope{resp: classified.Response()}
}

// queryError is a classified failure surfaced in the GraphQL errors list.
type queryError struct {
	err *service.Error
}

func (e *queryError) Error() string { return e.err.Message }

func (e *queryError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.err.Code.String()}
}

func (r *Resolver) queryFailed(operation string, err error) error {
	classified := service.HandleDataAccessError(err)
	if classified.Code == dto.CodeInternalServerError {
		r.logger.Error("query failed", zap.String("operation", operation), zap.Error(err))
	}
	return &queryError{err: classified}
}

type authResponse struct {
	envelope
	token *string
	user  *userResolver
}

func (r *authResponse) Token() *string      { return r.token }
func (r *authResponse) User() *userResolver { return r.user }

type categoryResponse struct {
	envelope
	category *categoryResolver
}

func (r *categoryResponse) Category() *categoryResolver { return r.category }

type postResponse struct {
	envelope
	post *postResolver
}

func (r *postResponse) Post() *postResolver { return r.post }

type commentResponse struct {
	envelope
	comment *commentResolver
}

func (r *commentResponse) Comment() *commentResolver { return r.comment }

type likeResponse struct {
	envelope
	like *likeResolver
}

func (r *likeResponse) Like() *likeResolver { return r.like }

type commentLikeResponse struct {
	envelope
	commentLike *commentLikeResolver
}

func (r *commentLikeResponse) CommentLike() *commentLikeResolver { return r.commentLike }
