package repository

import (
	"context"
	"fmt"

	"bloghub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// maxReplyDepth bounds the reply-tree walk on delete. Anything deeper is
// removed by the ON DELETE CASCADE on parent_id.
const maxReplyDepth = 32

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id string) (*models.Comment, error)
	// Update writes the content only.
	Update(ctx context.Context, comment *models.Comment) error
	// Delete removes the comment, its replies and their comment likes.
	Delete(ctx context.Context, id string) error
	ListTopLevelByPost(ctx context.Context, postID string) ([]models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	ListReplies(ctx context.Context, parentID string) ([]models.Comment, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Omit("Author", "Post", "Parent").Create(comment).Error
}

// FindByID retrieves a comment by its ID
func (r *commentRepository) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update an existing comment
func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	res := r.db.WithContext(ctx).Model(&models.Comment{ID: comment.ID}).Update("content", comment.Content)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// collect the subtree level by level
		ids := []string{id}
		frontier := []string{id}
		for depth := 0; depth < maxReplyDepth && len(frontier) > 0; depth++ {
			var children []string
			if err := tx.Model(&models.Comment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error; err != nil {
				return fmt.Errorf("collect replies: %w", err)
			}
			ids = append(ids, children...)
			frontier = children
		}

		if err := tx.Where("comment_id IN ?", ids).Delete(&models.CommentLike{}).Error; err != nil {
			return fmt.Errorf("delete comment likes: %w", err)
		}

		res := tx.Where("id IN ?", ids).Delete(&models.Comment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListTopLevelByPost returns the post's comments without a parent, newest first.
func (r *commentRepository) ListTopLevelByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	var comments []models.Comment
	if !validID(postID) {
		return comments, nil
	}
	if err := r.db.WithContext(ctx).
		Where("post_id = ? AND parent_id IS NULL", postID).
		Order("created_at desc").
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// ListReplies returns direct replies, oldest first.
func (r *commentRepository) ListReplies(ctx context.Context, parentID string) ([]models.Comment, error) {
	var comments []models.Comment
	if !validID(parentID) {
		return comments, nil
	}
	if err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	return comments, nil
}

func (r *commentRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
