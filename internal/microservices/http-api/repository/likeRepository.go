package repository

import (
	"context"
	"fmt"

	"bloghub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	// TogglePostLike removes the user's like of the post if present and adds
	// it otherwise, adjusting posts.likes_count in the same transaction.
	// liked reports the state after the call; like is nil when removed.
	TogglePostLike(ctx context.Context, userID, postID string) (like *models.Like, liked bool, err error)
	// ToggleCommentLike is TogglePostLike for comments.
	ToggleCommentLike(ctx context.Context, userID, commentID string) (like *models.CommentLike, liked bool, err error)
	ListByPost(ctx context.Context, postID string) ([]models.Like, error)
	ListByUser(ctx context.Context, userID string) ([]models.Like, error)
	ListCommentLikesByComment(ctx context.Context, commentID string) ([]models.CommentLike, error)
	ListCommentLikesByUser(ctx context.Context, userID string) ([]models.CommentLike, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

var (
	incrementLikes = gorm.Expr("likes_count + 1")
	decrementLikes = gorm.Expr("GREATEST(likes_count - 1, 0)")
)

func (r *likeRepository) TogglePostLike(ctx context.Context, userID, postID string) (*models.Like, bool, error) {
	var result *models.Like
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// the row lock serializes concurrent toggles on the same post
		var post models.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Take(&post, "id = ?", postID).Error; err != nil {
			return err
		}

		var existing []models.Like
		if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Limit(1).
			Find(&existing).Error; err != nil {
			return fmt.Errorf("find like: %w", err)
		}

		if len(existing) > 0 {
			if err := tx.Delete(&models.Like{}, "id = ?", existing[0].ID).Error; err != nil {
				return fmt.Errorf("delete like: %w", err)
			}
			return tx.Model(&models.Post{}).Where("id = ?", postID).
				UpdateColumn("likes_count", decrementLikes).Error
		}

		like := &models.Like{UserID: userID, PostID: postID}
		if err := tx.Omit(clause.Associations).Create(like).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("likes_count", incrementLikes).Error; err != nil {
			return err
		}
		result = like
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, result != nil, nil
}

func (r *likeRepository) ToggleCommentLike(ctx context.Context, userID, commentID string) (*models.CommentLike, bool, error) {
	var result *models.CommentLike
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Take(&comment, "id = ?", commentID).Error; err != nil {
			return err
		}

		var existing []models.CommentLike
		if err := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).
			Limit(1).
			Find(&existing).Error; err != nil {
			return fmt.Errorf("find comment like: %w", err)
		}

		if len(existing) > 0 {
			if err := tx.Delete(&models.CommentLike{}, "id = ?", existing[0].ID).Error; err != nil {
				return fmt.Errorf("delete comment like: %w", err)
			}
			return tx.Model(&models.Comment{}).Where("id = ?", commentID).
				UpdateColumn("likes_count", decrementLikes).Error
		}

		like := &models.CommentLike{UserID: userID, CommentID: commentID}
		if err := tx.Omit(clause.Associations).Create(like).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Comment{}).Where("id = ?", commentID).
			UpdateColumn("likes_count", incrementLikes).Error; err != nil {
			return err
		}
		result = like
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, result != nil, nil
}

func (r *likeRepository) ListByPost(ctx context.Context, postID string) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at asc").Find(&likes).Error; err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	return likes, nil
}

func (r *likeRepository) ListByUser(ctx context.Context, userID string) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at asc").Find(&likes).Error; err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	return likes, nil
}

func (r *likeRepository) ListCommentLikesByComment(ctx context.Context, commentID string) ([]models.CommentLike, error) {
	var likes []models.CommentLike
	if err := r.db.WithContext(ctx).Where("comment_id = ?", commentID).Order("created_at asc").Find(&likes).Error; err != nil {
		return nil, fmt.Errorf("list comment likes: %w", err)
	}
	return likes, nil
}

func (r *likeRepository) ListCommentLikesByUser(ctx context.Context, userID string) ([]models.CommentLike, error) {
	var likes []models.CommentLike
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at asc").Find(&likes).Error; err != nil {
		return nil, fmt.Errorf("list comment likes: %w", err)
	}
	return likes, nil
}
