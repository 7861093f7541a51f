package graph

import (
	"context"

	"bloghub/internal/microservices/http-api/dto"
	"bloghub/internal/microservices/http-api/models"
	"bloghub/internal/microservices/http-api/service"

	"github.com/graph-gophers/graphql-go"
)

type userResolver struct {
	root *Resolver
	user *models.User
}

func (r *Resolver) user(u *models.User) *userResolver {
	if u == nil {
		return nil
	}
	return &userResolver{root: r, user: u}
}

func (u *userResolver) ID() graphql.ID    { return graphql.ID(u.user.ID) }
func (u *userResolver) Email() string     { return u.user.Email }
func (u *userResolver) Name() string      { return u.user.Name }
func (u *userResolver) CreatedAt() string { return dto.FormatTime(u.user.CreatedAt) }
func (u *userResolver) UpdatedAt() string { return dto.FormatTime(u.user.UpdatedAt) }

func (u *userResolver) Posts(ctx context.Context) ([]*postResolver, error) {
	posts, err := u.root.svc.Posts.PostsOfAuthor(ctx, u.user.ID)
	if err != nil {
		return nil, u.root.queryFailed("User.posts", err)
	}
	return u.root.posts(posts), nil
}

func (u *userResolver) Comments(ctx context.Context) ([]*commentResolver, error) {
	comments, err := u.root.svc.Comments.ListByAuthor(ctx, u.user.ID)
	if err != nil {
		return nil, u.root.queryFailed("User.comments", err)
	}
	return u.root.comments(comments), nil
}

func (u *userResolver) Likes(ctx context.Context) ([]*likeResolver, error) {
	likes, err := u.root.svc.Likes.LikesOfUser(ctx, u.user.ID)
	if err != nil {
		return nil, u.root.queryFailed("User.likes", err)
	}
	return u.root.likes(likes), nil
}

func (u *userResolver) CommentLikes(ctx context.Context) ([]*commentLikeResolver, error) {
	likes, err := u.root.svc.Likes.CommentLikesOfUser(ctx, u.user.ID)
	if err != nil {
		return nil, u.root.queryFailed("User.commentLikes", err)
	}
	return u.root.commentLikes(likes), nil
}

type categoryResolver struct {
	root     *Resolver
	category *models.Category
}

func (r *Resolver) category(c *models.Category) *categoryResolver {
	if c == nil {
		return nil
	}
	return &categoryResolver{root: r, category: c}
}

func (c *categoryResolver) ID() graphql.ID    { return graphql.ID(c.category.ID) }
func (c *categoryResolver) Name() string      { return c.category.Name }
func (c *categoryResolver) CreatedAt() string { return dto.FormatTime(c.category.CreatedAt) }
func (c *categoryResolver) UpdatedAt() string { return dto.FormatTime(c.category.UpdatedAt) }

func (c *categoryResolver) Posts(ctx context.Context) ([]*postResolver, error) {
	posts, err := c.root.svc.Posts.PostsOfCategory(ctx, c.category.ID)
	if err != nil {
		return nil, c.root.queryFailed("Category.posts", err)
	}
	return c.root.posts(posts), nil
}

type postResolver struct {
	root *Resolver
	post *models.Post
}

func (r *Resolver) post(p *models.Post) *postResolver {
	if p == nil {
		return nil
	}
	return &postResolver{root: r, post: p}
}

func (r *Resolver) posts(posts []models.Post) []*postResolver {
	out := make([]*postResolver, len(posts))
	for i := range posts {
		out[i] = r.post(&posts[i])
	}
	return out
}

func (p *postResolver) ID() graphql.ID    { return graphql.ID(p.post.ID) }
func (p *postResolver) Title() string     { return p.post.Title }
func (p *postResolver) Content() string   { return p.post.Content }
func (p *postResolver) CreatedAt() string { return dto.FormatTime(p.post.CreatedAt) }
func (p *postResolver) UpdatedAt() string { return dto.FormatTime(p.post.UpdatedAt) }
func (p *postResolver) LikesCount() int32 { return int32(p.post.LikesCount) }

func (p *postResolver) Author(ctx context.Context) (*userResolver, error) {
	return p.root.author(ctx, "Post.author", p.post.AuthorID)
}

func (p *postResolver) Category(ctx context.Context) (*categoryResolver, error) {
	if p.post.CategoryID == nil {
		return nil, nil
	}
	if p.post.Category != nil && p.post.Category.ID == *p.post.CategoryID {
		return p.root.category(p.post.Category), nil
	}
	category, err := p.root.svc.Categories.Get(ctx, *p.post.CategoryID)
	if err != nil {
		if service.IsNotFound(err) {
			return nil, nil
		}
		return nil, p.root.queryFailed("Post.category", err)
	}
	return p.root.category(category), nil
}

func (p *postResolver) Comments(ctx context.Context) ([]*commentResolver, error) {
	comments, err := p.root.svc.Comments.ListByPost(ctx, p.post.ID)
	if err != nil {
		return nil, p.root.queryFailed("Post.comments", err)
	}
	return p.root.comments(comments), nil
}

func (p *postResolver) Likes(ctx context.Context) ([]*likeResolver, error) {
	likes, err := p.root.svc.Likes.LikesOfPost(ctx, p.post.ID)
	if err != nil {
		return nil, p.root.queryFailed("Post.likes", err)
	}
	return p.root.likes(likes), nil
}

type commentResolver struct {
	root    *Resolver
	comment *models.Comment
}

func (r *Resolver) comment(c *models.Comment) *commentResolver {
	if c == nil {
		return nil
	}
	return &commentResolver{root: r, comment: c}
}

func (r *Resolver) comments(comments []models.Comment) []*commentResolver {
	out := make([]*commentResolver, len(comments))
	for i := range comments {
		out[i] = r.comment(&comments[i])
	}
	return out
}

func (c *commentResolver) ID() graphql.ID    { return graphql.ID(c.comment.ID) }
func (c *commentResolver) Content() string   { return c.comment.Content }
func (c *commentResolver) CreatedAt() string { return dto.FormatTime(c.comment.CreatedAt) }
func (c *commentResolver) UpdatedAt() string { return dto.FormatTime(c.comment.UpdatedAt) }
func (c *commentResolver) LikesCount() int32 { return int32(c.comment.LikesCount) }

func (c *commentResolver) Author(ctx context.Context) (*userResolver, error) {
	return c.root.author(ctx, "Comment.author", c.comment.AuthorID)
}

func (c *commentResolver) Post(ctx context.Context) (*postResolver, error) {
	post, err := c.root.svc.Posts.Get(ctx, c.comment.PostID)
	if err != nil {
		return nil, c.root.queryFailed("Comment.post", err)
	}
	return c.root.post(post), nil
}

func (c *commentResolver) Parent(ctx context.Context) (*commentResolver, error) {
	if c.comment.ParentID == nil {
		return nil, nil
	}
	parent, err := c.root.svc.Comments.Get(ctx, *c.comment.ParentID)
	if err != nil {
		if service.IsNotFound(err) {
			return nil, nil
		}
		return nil, c.root.queryFailed("Comment.parent", err)
	}
	return c.root.comment(parent), nil
}

func (c *commentResolver) Replies(ctx context.Context) ([]*commentResolver, error) {
	replies, err := c.root.svc.Comments.Replies(ctx, c.comment.ID)
	if err != nil {
		return nil, c.root.queryFailed("Comment.replies", err)
	}
	return c.root.comments(replies), nil
}

func (c *commentResolver) Likes(ctx context.Context) ([]*commentLikeResolver, error) {
	likes, err := c.root.svc.Likes.CommentLikesOfComment(ctx, c.comment.ID)
	if err != nil {
		return nil, c.root.queryFailed("Comment.likes", err)
	}
	return c.root.commentLikes(likes), nil
}

type likeResolver struct {
	root *Resolver
	like *models.Like
}

func (r *Resolver) like(l *models.Like) *likeResolver {
	if l == nil {
		return nil
	}
	return &likeResolver{root: r, like: l}
}

func (r *Resolver) likes(likes []models.Like) []*likeResolver {
	out := make([]*likeResolver, len(likes))
	for i := range likes {
		out[i] = r.like(&likes[i])
	}
	return out
}

func (l *likeResolver) ID() graphql.ID    { return graphql.ID(l.like.ID) }
func (l *likeResolver) CreatedAt() string { return dto.FormatTime(l.like.CreatedAt) }

func (l *likeResolver) User(ctx context.Context) (*userResolver, error) {
	return l.root.author(ctx, "Like.user", l.like.UserID)
}

func (l *likeResolver) Post(ctx context.Context) (*postResolver, error) {
	post, err := l.root.svc.Posts.Get(ctx, l.like.PostID)
	if err != nil {
		return nil, l.root.queryFailed("Like.post", err)
	}
	return l.root.post(post), nil
}

type commentLikeResolver struct {
	root *Resolver
	like *models.CommentLike
}

func (r *Resolver) commentLike(l *models.CommentLike) *commentLikeResolver {
	if l == nil {
		return nil
	}
	return &commentLikeResolver{root: r, like: l}
}

func (r *Resolver) commentLikes(likes []models.CommentLike) []*commentLikeResolver {
	out := make([]*commentLikeResolver, len(likes))
	for i := range likes {
		out[i] = r.commentLike(&likes[i])
	}
	return out
}

func (l *commentLikeResolver) ID() graphql.ID    { return graphql.ID(l.like.ID) }
func (l *commentLikeResolver) CreatedAt() string { return dto.FormatTime(l.like.CreatedAt) }

func (l *commentLikeResolver) User(ctx context.Context) (*userResolver, error) {
	return l.root.author(ctx, "CommentLike.user", l.like.UserID)
}

func (l *commentLikeResolver) Comment(ctx context.Context) (*commentResolver, error) {
	comment, err := l.root.svc.Comments.Get(ctx, l.like.CommentID)
	if err != nil {
		return nil, l.root.queryFailed("CommentLike.comment", err)
	}
	return l.root.comment(comment), nil
}

// author loads a user referenced by a non-null relation field.
func (r *Resolver) author(ctx context.Context, field, userID string) (*userResolver, error) {
	user, err := r.svc.Users.Get(ctx, userID)
	if err != nil {
		return nil, r.queryFailed(field, err)
	}
	return r.user(user), nil
}

type postsResult struct {
	posts      []*postResolver
	totalCount int64
}

func (r *Resolver) postsResult(page *dto.PostPage) *postsResult {
	return &postsResult{posts: r.posts(page.Posts), totalCount: page.TotalCount}
}

func (p *postsResult) Posts() []*postResolver { return p.posts }
func (p *postsResult) TotalCount() int32      { return int32(p.totalCount) }
