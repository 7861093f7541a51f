package service

import (
	"context"

	"bloghub/internal/microservices/http-api/dto"
	"bloghub/internal/microservices/http-api/models"
	"bloghub/internal/microservices/http-api/repository"
)

type CommentService interface {
	Create(ctx context.Context, authorID string, req dto.CreateCommentRequest) (*models.Comment, error)
	// Reply attaches a comment under commentID, on the parent's post.
	Reply(ctx context.Context, authorID string, req dto.ReplyRequest) (*models.Comment, error)
	Update(ctx context.Context, userID, commentID string, req dto.UpdateCommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, userID, commentID string) (*models.Comment, error)
	Get(ctx context.Context, id string) (*models.Comment, error)

	ListTopLevel(ctx context.Context, postID string) ([]models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	Replies(ctx context.Context, commentID string) ([]models.Comment, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) Create(ctx context.Context, authorID string, req dto.CreateCommentRequest) (*models.Comment, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	// Verify post exists
	if _, err := s.postRepo.FindByID(ctx, req.PostID); err != nil {
		if IsNotFound(err) {
			return nil, NotFound("Post not found")
		}
		return nil, err
	}

	comment := &models.Comment{
		Content:  req.Content,
		AuthorID: authorID,
		PostID:   req.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Reply(ctx context.Context, authorID string, req dto.ReplyRequest) (*models.Comment, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	parent, err := s.commentRepo.FindByID(ctx, req.CommentID)
	if err != nil {
		if IsNotFound(err) {
			return nil, NotFound("Parent comment not found")
		}
		return nil, err
	}

	reply := &models.Comment{
		Content:  req.Content,
		AuthorID: authorID,
		PostID:   parent.PostID,
		ParentID: &parent.ID,
	}
	if err := s.commentRepo.Create(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *commentService) Update(ctx context.Context, userID, commentID string, req dto.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.ownedComment(ctx, userID, commentID, "You can only update your own comments")
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	comment.Content = req.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.FindByID(ctx, commentID)
}

func (s *commentService) Delete(ctx context.Context, userID, commentID string) (*models.Comment, error) {
	comment, err := s.ownedComment(ctx, userID, commentID, "You can only delete your own comments")
	if err != nil {
		return nil, err
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return nil, err
	}
	return comment, nil
}

// ownedComment loads the comment and checks that userID wrote it.
func (s *commentService) ownedComment(ctx context.Context, userID, commentID, forbidden string) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if IsNotFound(err) {
			return nil, NotFound("Comment not found")
		}
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, Forbidden(forbidden)
	}
	return comment, nil
}

func (s *commentService) Get(ctx context.Context, id string) (*models.Comment, error) {
	return s.commentRepo.FindByID(ctx, id)
}

func (s *commentService) ListTopLevel(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.commentRepo.ListTopLevelByPost(ctx, postID)
}

func (s *commentService) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *commentService) Replies(ctx context.Context, commentID string) ([]models.Comment, error) {
	return s.commentRepo.ListReplies(ctx, commentID)
}

func (s *commentService) ListByAuthor(ctx context.Context, authorID string) ([]models.Comment, error) {
	return s.commentRepo.ListByAuthor(ctx, authorID)
}
