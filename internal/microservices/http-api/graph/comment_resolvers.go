package graph

import (
	"context"

	"bloghub/internal/microservices/http-api/dto"
	"bloghub/internal/microservices/http-api/middleware"

	"github.com/graph-gophers/graphql-go"
)

// PostComments lists the top-level comments of a post, newest first.
func (r *Resolver) PostComments(ctx context.Context, args struct{ PostID graphql.ID }) ([]*commentResolver, error) {
	comments, err := r.svc.Comments.ListTopLevel(ctx, string(args.PostID))
	if err != nil {
		return nil, r.queryFailed("postComments", err)
	}
	return r.comments(comments), nil
}

func (r *Resolver) CommentReplies(ctx context.Context, args struct{ CommentID graphql.ID }) ([]*commentResolver, error) {
	replies, err := r.svc.Comments.Replies(ctx, string(args.CommentID))
	if err != nil {
		return nil, r.queryFailed("commentReplies", err)
	}
	return r.comments(replies), nil
}

func (r *Resolver) CreateComment(ctx context.Context, args struct {
	PostID  graphql.ID
	Content string
}) *commentResponse {
	userID, err := middleware.RequireUser(ctx)
	if err != nil {
		return &commentResponse{envelope: r.fail(ctx, "createComment", err)}
	}

	comment, err := r.svc.Comments.Create(ctx, userID, dto.CreateCommentRequest{
		PostID:  string(args.PostID),
		Content: args.Content,
	})
	if err != nil {
		return &commentResponse{envelope: r.fail(ctx, "createComment", err)}
	}
	return &commentResponse{envelope: r.succeed("createComment", ""), comment: r.comment(comment)}
}

// ReplyToComment posts under commentID. The reply belongs to the parent's post.
func (r *Resolver) ReplyToComment(ctx context.Context, args struct {
	CommentID graphql.ID
	Content   string
}) *commentResponse {
	userID, err := middleware.RequireUser(ctx)
	if err != nil {
		return &commentResponse{envelope: r.fail(ctx, "replyToComment", err)}
	}

	reply, err := r.svc.Comments.Reply(ctx, userID, dto.ReplyRequest{
		CommentID: string(args.CommentID),
		Content:   args.Content,
	})
	if err != nil {
		return &commentResponse{envelope: r.fail(ctx, "replyToComment", err)}
	}
	return &commentResponse{envelope: r.succeed("replyToComment", ""), comment: r.comment(reply)}
}

func (r *Resolver) UpdateComment(ctx context.Context, args struct {
	ID      graphql.ID
	Content string
}) *commentResponse {
	userID, err := middleware.RequireUser(ctx)
	if err != nil {
		return &commentResponse{envelope: r.fail(ctx, "updateComment", err)}
	}

	comment, err := r.svc.Comments.Update(ctx, userID, string(args.ID), dto.UpdateCommentRequest{Content: args.Content})
	if err != nil {
		return &commentResponse{envelope: r.fail(ctx, "updateComment", err)}
	}
	return &commentResponse{envelope: r.succeed("updateComment", ""), comment: r.comment(comment)}
}

func (r *Resolver) DeleteComment(ctx context.Context, args struct{ ID graphql.ID }) *commentResponse {
	userID, err := middleware.RequireUser(ctx)
	if err != nil {
		return &commentResponse{envelope: r.fail(ctx, "deleteComment", err)}
	}

	comment, err := r.svc.Comments.Delete(ctx, userID, string(args.ID))
	if err != nil {
		return &commentResponse{envelope: r.fail(ctx, "deleteComment", err)}
	}
	return &commentResponse{
		envelope: r.succeed("deleteComment", "Comment deleted successfully"),
		comment:  r.comment(comment),
	}
}

func (r *Resolver) ToggleCommentLike(ctx context.Context, args struct{ CommentID graphql.ID }) *commentLikeResponse {
	userID, err := middleware.RequireUser(ctx)
	if err != nil {
		return &commentLikeResponse{envelope: r.fail(ctx, "toggleCommentLike", err)}
	}

	result, err := r.svc.Likes.ToggleCommentLike(ctx, userID, string(args.CommentID))
	if err != nil {
		return &commentLikeResponse{envelope: r.fail(ctx, "toggleCommentLike", err)}
	}
	return &commentLikeResponse{
		envelope:    r.succeed("toggleCommentLike", result.Message),
		commentLike: r.commentLike(result.Like),
	}
}
