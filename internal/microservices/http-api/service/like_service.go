package service

import (
	"context"

	"bloghub/internal/microservices/http-api/models"
	"bloghub/internal/microservices/http-api/repository"
)

// ToggleResult reports the outcome of a like toggle. Like is nil when the
// like was removed.
type ToggleResult[T any] struct {
	Like    *T
	Liked   bool
	Message string
}

type LikeService interface {
	TogglePostLike(ctx context.Context, userID, postID string) (*ToggleResult[models.Like], error)
	ToggleCommentLike(ctx context.Context, userID, commentID string) (*ToggleResult[models.CommentLike], error)

	LikesOfPost(ctx context.Context, postID string) ([]models.Like, error)
	LikesOfUser(ctx context.Context, userID string) ([]models.Like, error)
	CommentLikesOfComment(ctx context.Context, commentID string) ([]models.CommentLike, error)
	CommentLikesOfUser(ctx context.Context, userID string) ([]models.CommentLike, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
}

func NewLikeService(likeRepo repository.LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

func (s *likeService) TogglePostLike(ctx context.Context, userID, postID string) (*ToggleResult[models.Like], error) {
	like, liked, err := s.likeRepo.TogglePostLike(ctx, userID, postID)
	if err != nil {
		if IsNotFound(err) {
			return nil, NotFound("Post not found")
		}
		return nil, err
	}

	result := &ToggleResult[models.Like]{Like: like, Liked: liked, Message: "Post unliked successfully"}
	if liked {
		result.Message = "Post liked successfully"
	}
	return result, nil
}

func (s *likeService) ToggleCommentLike(ctx context.Context, userID, commentID string) (*ToggleResult[models.CommentLike], error) {
	like, liked, err := s.likeRepo.ToggleCommentLike(ctx, userID, commentID)
	if err != nil {
		if IsNotFound(err) {
			return nil, NotFound("Comment not found")
		}
		return nil, err
	}

	result := &ToggleResult[models.CommentLike]{Like: like, Liked: liked, Message: "Comment unliked successfully"}
	if liked {
		result.Message = "Comment liked successfully"
	}
	return result, nil
}

func (s *likeService) LikesOfPost(ctx context.Context, postID string) ([]models.Like, error) {
	return s.likeRepo.ListByPost(ctx, postID)
}

func (s *likeService) LikesOfUser(ctx context.Context, userID string) ([]models.Like, error) {
	return s.likeRepo.ListByUser(ctx, userID)
}

func (s *likeService) CommentLikesOfComment(ctx context.Context, commentID string) ([]models.CommentLike, error) {
	return s.likeRepo.ListCommentLikesByComment(ctx, commentID)
}

func (s *likeService) CommentLikesOfUser(ctx context.Context, userID string) ([]models.CommentLike, error) {
	return s.likeRepo.ListCommentLikesByUser(ctx, userID)
}
