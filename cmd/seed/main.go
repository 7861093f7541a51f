package main

import (
	"context"
	"fmt"
	"os"

	"bloghub/database"
	"bloghub/internal/config"
	"bloghub/internal/logger"
	"bloghub/internal/microservices/http-api/dto"
	"bloghub/internal/microservices/http-api/repository"
	"bloghub/internal/microservices/http-api/service"
	"bloghub/internal/middleware/auth"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var reset bool

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo dataset into the bloghub database",
	Long: `seed inserts demo users, categories, posts, comments and likes.

Everything goes through the service layer, so like counters and category
names end up exactly as the API would leave them. Use --reset to empty the
tables first; without it seeding a populated database fails on the first
duplicate email.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("could not load config: %w", err)
		}
		zl, err := logger.New(cfg.LogLevel, "text")
		if err != nil {
			return err
		}
		defer zl.Sync()

		db, err := database.Connect(cfg, zl)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		ctx := cmd.Context()
		if reset {
			if err := database.Reset(ctx, db); err != nil {
				return fmt.Errorf("reset failed: %w", err)
			}
			zl.Info("database cleared")
		}
		return newSeeder(db, cfg, zl).run(ctx)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&reset, "reset", false, "delete all existing rows before seeding")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type seeder struct {
	auth       service.AuthService
	categories service.CategoryService
	posts      service.PostService
	comments   service.CommentService
	likes      service.LikeService
	logger     *zap.Logger

	userIDs    map[string]string // email -> id
	postIDs    map[string]string // title -> id
	commentIDs []string
}

func newSeeder(db *gorm.DB, cfg *config.Config, zl *zap.Logger) *seeder {
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	postRepo := repository.NewPostRepository(db)
	categoryService := service.NewCategoryService(categoryRepo, zl)

	return &seeder{
		auth: service.NewAuthService(userRepo, repository.NewRevokedTokenRepository(nil),
			auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry), zl),
		categories: categoryService,
		posts:      service.NewPostService(postRepo, categoryRepo, categoryService, zl),
		comments:   service.NewCommentService(repository.NewCommentRepository(db), postRepo),
		likes:      service.NewLikeService(repository.NewLikeRepository(db)),
		logger:     zl,
		userIDs:    make(map[string]string),
		postIDs:    make(map[string]string),
	}
}

func (s *seeder) run(ctx context.Context) error {
	for _, u := range users {
		result, err := s.auth.SignUp(ctx, dto.SignUpRequest{Email: u.Email, Password: u.Password, Name: u.Name})
		if err != nil {
			return fmt.Errorf("user %s: %w", u.Email, err)
		}
		s.userIDs[u.Email] = result.User.ID
	}
	s.logger.Info("created users", zap.Int("count", len(users)))

	for _, name := range categories {
		if _, err := s.categories.Create(ctx, name); err != nil {
			return fmt.Errorf("category %s: %w", name, err)
		}
	}
	s.logger.Info("created categories", zap.Int("count", len(categories)))

	for _, p := range posts {
		category := p.Category
		post, err := s.posts.Create(ctx, s.userIDs[p.Author], dto.CreatePostRequest{
			Title:        p.Title,
			Content:      p.Content,
			CategoryName: &category,
		})
		if err != nil {
			return fmt.Errorf("post %q: %w", p.Title, err)
		}
		s.postIDs[p.Title] = post.ID
	}
	s.logger.Info("created posts", zap.Int("count", len(posts)))

	for _, c := range comments {
		if err := s.comment(ctx, c); err != nil {
			return err
		}
	}
	s.logger.Info("created comments", zap.Int("count", len(comments)))

	for _, l := range likes {
		if _, err := s.likes.TogglePostLike(ctx, s.userIDs[l.User], s.postIDs[l.Post]); err != nil {
			return fmt.Errorf("like %s on %q: %w", l.User, l.Post, err)
		}
	}
	for _, l := range commentLikes {
		if _, err := s.likes.ToggleCommentLike(ctx, s.userIDs[l.User], s.commentIDs[l.Comment-1]); err != nil {
			return fmt.Errorf("comment like %s: %w", l.User, err)
		}
	}
	s.logger.Info("created likes", zap.Int("post_likes", len(likes)), zap.Int("comment_likes", len(commentLikes)))

	s.logger.Info("database seeding completed")
	return nil
}

func (s *seeder) comment(ctx context.Context, c seedComment) error {
	authorID := s.userIDs[c.Author]
	if c.ReplyTo > 0 {
		reply, err := s.comments.Reply(ctx, authorID, dto.ReplyRequest{
			CommentID: s.commentIDs[c.ReplyTo-1],
			Content:   c.Content,
		})
		if err != nil {
			return fmt.Errorf("reply %q: %w", c.Content, err)
		}
		s.commentIDs = append(s.commentIDs, reply.ID)
		return nil
	}

	comment, err := s.comments.Create(ctx, authorID, dto.CreateCommentRequest{
		PostID:  s.postIDs[c.Post],
		Content: c.Content,
	})
	if err != nil {
		return fmt.Errorf("comment %q: %w", c.Content, err)
	}
	s.commentIDs = append(s.commentIDs, comment.ID)
	return nil
}
