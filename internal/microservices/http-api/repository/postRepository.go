package repository

import (
	"context"
	"fmt"
	"strings"

	"bloghub/internal/microservices/http-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostFilter narrows list and count queries. Empty fields are ignored.
type PostFilter struct {
	Search     string // case-insensitive substring of title or content
	CategoryID string
	AuthorID   string
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id string) (*models.Post, error)
	// Update writes title, content and category; likes_count is left alone.
	Update(ctx context.Context, post *models.Post) error
	// Delete removes the post together with its comments and likes.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter PostFilter, limit, skip int) ([]models.Post, error)
	Count(ctx context.Context, filter PostFilter) (int64, error)
	// ListPopular orders by like count, oldest first among equals.
	ListPopular(ctx context.Context, limit, skip int) ([]models.Post, error)
	ListAll(ctx context.Context, filter PostFilter) ([]models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

var likePatternEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// validID reports whether id can name a row. Ids are uuid columns, so any
// other string matches nothing.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// scope applies filter to q.
func (f PostFilter) scope(q *gorm.DB) *gorm.DB {
	if (f.CategoryID != "" && !validID(f.CategoryID)) || (f.AuthorID != "" && !validID(f.AuthorID)) {
		return q.Where("FALSE")
	}
	if f.Search != "" {
		p := "%" + likePatternEscaper.Replace(f.Search) + "%"
		q = q.Where("(title ILIKE ? OR content ILIKE ?)", p, p)
	}
	if f.CategoryID != "" {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.AuthorID != "" {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	return q
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Omit("Author", "Category").Create(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	// Select forces zero values (a nil category) to be written
	res := r.db.WithContext(ctx).
		Model(&models.Post{ID: post.ID}).
		Select("Title", "Content", "CategoryID").
		Updates(post)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comments := tx.Model(&models.Comment{}).Select("id").Where("post_id = ?", id)
		if err := tx.Where("comment_id IN (?)", comments).Delete(&models.CommentLike{}).Error; err != nil {
			return fmt.Errorf("delete comment likes: %w", err)
		}
		// replies first, so the parent_id constraint never blocks
		if err := tx.Where("post_id = ? AND parent_id IS NOT NULL", id).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete replies: %w", err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return fmt.Errorf("delete likes: %w", err)
		}

		res := tx.Delete(&models.Post{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *postRepository) List(ctx context.Context, filter PostFilter, limit, skip int) ([]models.Post, error) {
	var list []models.Post
	q := filter.scope(r.db.WithContext(ctx).Model(&models.Post{}))
	if err := q.Order("created_at desc").Order("id desc").
		Limit(limit).
		Offset(skip).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return list, nil
}

func (r *postRepository) Count(ctx context.Context, filter PostFilter) (int64, error) {
	var total int64
	q := filter.scope(r.db.WithContext(ctx).Model(&models.Post{}))
	if err := q.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return total, nil
}

func (r *postRepository) ListPopular(ctx context.Context, limit, skip int) ([]models.Post, error) {
	var list []models.Post
	if err := r.db.WithContext(ctx).
		Order("likes_count desc").Order("created_at asc").Order("id asc").
		Limit(limit).
		Offset(skip).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list popular posts: %w", err)
	}
	return list, nil
}

func (r *postRepository) ListAll(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	var list []models.Post
	q := filter.scope(r.db.WithContext(ctx).Model(&models.Post{}))
	if err := q.Order("created_at desc").Order("id desc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return list, nil
}
