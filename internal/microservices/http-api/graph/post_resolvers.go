package graph

import (
	"context"

	"bloghub/internal/microservices/http-api/dto"
	"bloghub/internal/microservices/http-api/middleware"
	"bloghub/internal/microservices/http-api/service"

	"github.com/graph-gophers/graphql-go"
)

// pageArgs are the pagination arguments shared by the post list queries.
type pageArgs struct {
	Page   *int32
	Limit  *int32
	Offset *int32
}

func (a pageArgs) request() dto.PageRequest {
	return dto.NewPageRequest(a.Page, a.Limit, a.Offset)
}

func (r *Resolver) Posts(ctx context.Context, args pageArgs) (*postsResult, error) {
	page, err := r.svc.Posts.List(ctx, args.request())
	if err != nil {
		return nil, r.queryFailed("posts", err)
	}
	return r.postsResult(page), nil
}

func (r *Resolver) SearchPosts(ctx context.Context, args struct {
	Search string
	Page   *int32
	Limit  *int32
	Offset *int32
}) (*postsResult, error) {
	page, err := r.svc.Posts.Search(ctx, args.Search, dto.NewPageRequest(args.Page, args.Limit, args.Offset))
	if err != nil {
		return nil, r.queryFailed("searchPosts", err)
	}
	return r.postsResult(page), nil
}

func (r *Resolver) PostsByCategory(ctx context.Context, args struct {
	CategoryID graphql.ID
	Page       *int32
	Limit      *int32
	Offset     *int32
}) (*postsResult, error) {
	page, err := r.svc.Posts.ListByCategory(ctx, string(args.CategoryID), dto.NewPageRequest(args.Page, args.Limit, args.Offset))
	if err != nil {
		return nil, r.queryFailed("postsByCategory", err)
	}
	return r.postsResult(page), nil
}

func (r *Resolver) PostsByUser(ctx context.Context, args struct {
	UserID graphql.ID
	Page   *int32
	Limit  *int32
	Offset *int32
}) (*postsResult, error) {
	page, err := r.svc.Posts.ListByUser(ctx, string(args.UserID), dto.NewPageRequest(args.Page, args.Limit, args.Offset))
	if err != nil {
		return nil, r.queryFailed("postsByUser", err)
	}
	return r.postsResult(page), nil
}

// PopularPosts orders by like count, oldest first among equal counts.
func (r *Resolver) PopularPosts(ctx context.Context, args pageArgs) (*postsResult, error) {
	page, err := r.svc.Posts.ListPopular(ctx, args.request())
	if err != nil {
		return nil, r.queryFailed("popularPosts", err)
	}
	return r.postsResult(page), nil
}

func (r *Resolver) Post(ctx context.Context, args struct{ ID graphql.ID }) (*postResolver, error) {
	post, err := r.svc.Posts.Get(ctx, string(args.ID))
	if err != nil {
		if service.IsNotFound(err) {
			return nil, nil
		}
		return nil, r.queryFailed("post", err)
	}
	return r.post(post), nil
}

func (r *Resolver) CreatePost(ctx context.Context, args struct {
	Title        string
	Content      string
	CategoryName *string
}) *postResponse {
	userID, err := middleware.RequireUser(ctx)
	if err != nil {
		return &postResponse{envelope: r.fail(ctx, "createPost", err)}
	}

	post, err := r.svc.Posts.Create(ctx, userID, dto.CreatePostRequest{
		Title:        args.Title,
		Content:      args.Content,
		CategoryName: args.CategoryName,
	})
	if err != nil {
		return &postResponse{envelope: r.fail(ctx, "createPost", err)}
	}
	return &postResponse{envelope: r.succeed("createPost", ""), post: r.post(post)}
}

// UpdatePost applies the given fields. An explicit null or empty
// categoryName removes the category; an omitted one keeps it.
func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	ID           graphql.ID
	Title        graphql.NullString
	Content      graphql.NullString
	CategoryName graphql.NullString
}) *postResponse {
	userID, err := middleware.RequireUser(ctx)
	if err != nil {
		return &postResponse{envelope: r.fail(ctx, "updatePost", err)}
	}

	post, err := r.svc.Posts.Update(ctx, userID, string(args.ID), dto.UpdatePostRequest{
		Title:    args.Title.Value,
		Content:  args.Content.Value,
		Category: dto.OptionalString{Set: args.CategoryName.Set, Value: args.CategoryName.Value},
	})
	if err != nil {
		return &postResponse{envelope: r.fail(ctx, "updatePost", err)}
	}
	return &postResponse{envelope: r.succeed("updatePost", ""), post: r.post(post)}
}

func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID graphql.ID }) *postResponse {
	userID, err := middleware.RequireUser(ctx)
	if err != nil {
		return &postResponse{envelope: r.fail(ctx, "deletePost", err)}
	}

	post, err := r.svc.Posts.Delete(ctx, userID, string(args.ID))
	if err != nil {
		return &postResponse{envelope: r.fail(ctx, "deletePost", err)}
	}
	return &postResponse{envelope: r.succeed("deletePost", "Post deleted successfully"), post: r.post(post)}
}

func (r *Resolver) ToggleLike(ctx context.Context, args struct{ PostID graphql.ID }) *likeResponse {
	userID, err := middleware.RequireUser(ctx)
	if err != nil {
		return &likeResponse{envelope: r.fail(ctx, "toggleLike", err)}
	}

	result, err := r.svc.Likes.TogglePostLike(ctx, userID, string(args.PostID))
	if err != nil {
		return &likeResponse{envelope: r.fail(ctx, "toggleLike", err)}
	}
	return &likeResponse{envelope: r.succeed("toggleLike", result.Message), like: r.like(result.Like)}
}
