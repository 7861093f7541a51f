package service

import (
	"context"
	"strings"

	"bloghub/internal/microservices/http-api/dto"
	"bloghub/internal/microservices/http-api/models"
	"bloghub/internal/microservices/http-api/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type PostService interface {
	Create(ctx context.Context, authorID string, req dto.CreatePostRequest) (*models.Post, error)
	Update(ctx context.Context, userID, postID string, req dto.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, userID, postID string) (*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)

	List(ctx context.Context, page dto.PageRequest) (*dto.PostPage, error)
	Search(ctx context.Context, term string, page dto.PageRequest) (*dto.PostPage, error)
	ListByCategory(ctx context.Context, categoryID string, page dto.PageRequest) (*dto.PostPage, error)
	ListByUser(ctx context.Context, userID string, page dto.PageRequest) (*dto.PostPage, error)
	ListPopular(ctx context.Context, page dto.PageRequest) (*dto.PostPage, error)

	// PostsOfCategory and PostsOfAuthor are the unpaginated relation lists.
	PostsOfCategory(ctx context.Context, categoryID string) ([]models.Post, error)
	PostsOfAuthor(ctx context.Context, authorID string) ([]models.Post, error)
}

type postService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	categories   CategoryService
	logger       *zap.Logger
}

func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	categories CategoryService,
	logger *zap.Logger,
) PostService {
	return &postService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		categories:   categories,
		logger:       logger,
	}
}

func (s *postService) Create(ctx context.Context, authorID string, req dto.CreatePostRequest) (*models.Post, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	}

	if req.CategoryName != nil && strings.TrimSpace(*req.CategoryName) != "" {
		category, err := s.categories.Resolve(ctx, *req.CategoryName)
		if err != nil {
			// the post is still created, just uncategorized
			s.logger.Warn("category resolution failed, creating post without category",
				zap.String("category", *req.CategoryName),
				zap.Error(err),
			)
		} else {
			post.CategoryID = &category.ID
		}
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, userID, postID string, req dto.UpdatePostRequest) (*models.Post, error) {
	post, err := s.ownedPost(ctx, userID, postID, "You can only update your own posts")
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}

	if req.Category.Set {
		if req.Category.Cleared() {
			post.CategoryID = nil
		} else if changed, err := s.categoryChanged(ctx, post, *req.Category.Value); err != nil {
			return nil, err
		} else if changed {
			category, err := s.categories.Resolve(ctx, *req.Category.Value)
			if err != nil {
				return nil, err
			}
			post.CategoryID = &category.ID
		}
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.FindByID(ctx, postID)
}

// categoryChanged compares name with the post's current category, ignoring case.
func (s *postService) categoryChanged(ctx context.Context, post *models.Post, name string) (bool, error) {
	if post.CategoryID == nil {
		return true, nil
	}
	current, err := s.categoryRepo.FindByID(ctx, *post.CategoryID)
	if err != nil {
		if IsNotFound(err) {
			return true, nil
		}
		return false, err
	}
	return NormalizeCategoryName(current.Name) != NormalizeCategoryName(name), nil
}

func (s *postService) Delete(ctx context.Context, userID, postID string) (*models.Post, error) {
	post, err := s.ownedPost(ctx, userID, postID, "You can only delete your own posts")
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return nil, err
	}
	return post, nil
}

// ownedPost loads the post and checks that userID wrote it. A missing post
// is reported before a foreign one.
func (s *postService) ownedPost(ctx context.Context, userID, postID, forbidden string) (*models.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if IsNotFound(err) {
			return nil, NotFound("Post not found")
		}
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, Forbidden(forbidden)
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.FindByID(ctx, id)
}

func (s *postService) List(ctx context.Context, page dto.PageRequest) (*dto.PostPage, error) {
	return s.page(ctx, repository.PostFilter{}, page)
}

func (s *postService) Search(ctx context.Context, term string, page dto.PageRequest) (*dto.PostPage, error) {
	return s.page(ctx, repository.PostFilter{Search: term}, page)
}

func (s *postService) ListByCategory(ctx context.Context, categoryID string, page dto.PageRequest) (*dto.PostPage, error) {
	return s.page(ctx, repository.PostFilter{CategoryID: categoryID}, page)
}

func (s *postService) ListByUser(ctx context.Context, userID string, page dto.PageRequest) (*dto.PostPage, error) {
	return s.page(ctx, repository.PostFilter{AuthorID: userID}, page)
}

// page fetches the rows and the filtered count concurrently.
func (s *postService) page(ctx context.Context, filter repository.PostFilter, page dto.PageRequest) (*dto.PostPage, error) {
	var result dto.PostPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		posts, err := s.postRepo.List(gctx, filter, page.Limit, page.Skip())
		result.Posts = posts
		return err
	})
	g.Go(func() error {
		total, err := s.postRepo.Count(gctx, filter)
		result.TotalCount = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *postService) ListPopular(ctx context.Context, page dto.PageRequest) (*dto.PostPage, error) {
	var result dto.PostPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		posts, err := s.postRepo.ListPopular(gctx, page.Limit, page.Skip())
		result.Posts = posts
		return err
	})
	g.Go(func() error {
		total, err := s.postRepo.Count(gctx, repository.PostFilter{})
		result.TotalCount = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *postService) PostsOfCategory(ctx context.Context, categoryID string) ([]models.Post, error) {
	return s.postRepo.ListAll(ctx, repository.PostFilter{CategoryID: categoryID})
}

func (s *postService) PostsOfAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	return s.postRepo.ListAll(ctx, repository.PostFilter{AuthorID: authorID})
}
