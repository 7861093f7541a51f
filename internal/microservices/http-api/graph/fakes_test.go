package graph

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"bloghub/internal/microservices/http-api/models"
	"bloghub/internal/microservices/http-api/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// memDB is an in-memory stand-in for the postgres schema, shared by the
// repository fakes below. Rows are stored by value so callers cannot alias
// stored state.
type memDB struct {
	mu           sync.Mutex
	clock        time.Time
	users        []models.User
	categories   []models.Category
	posts        []models.Post
	comments     []models.Comment
	likes        []models.Like
	commentLikes []models.CommentLike
}

func newMemDB() *memDB {
	return &memDB{clock: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

// tick returns a strictly increasing timestamp so creation order is total.
func (db *memDB) tick() time.Time {
	db.clock = db.clock.Add(time.Second)
	return db.clock
}

// missing is the error postgres gives for a lookup by id that matches no
// row: a plain miss, or 22P02 when id is not a uuid at all.
func missing(id string) error {
	if uuid.Validate(id) != nil {
		return &pgconn.PgError{Code: "22P02", Message: fmt.Sprintf("invalid input syntax for type uuid: %q", id)}
	}
	return gorm.ErrRecordNotFound
}

type memUsers struct{ db *memDB }
type memCategories struct{ db *memDB }
type memPosts struct{ db *memDB }
type memComments struct{ db *memDB }
type memLikes struct{ db *memDB }

var (
	_ repository.UserRepository     = memUsers{}
	_ repository.CategoryRepository = memCategories{}
	_ repository.PostRepository     = memPosts{}
	_ repository.CommentRepository  = memComments{}
	_ repository.LikeRepository     = memLikes{}
)

func (r memUsers) Create(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = r.db.tick()
	user.UpdatedAt = user.CreatedAt
	r.db.users = append(r.db.users, *user)
	return nil
}

func (r memUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, missing(id)
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memUsers) List(context.Context) ([]models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return append([]models.User(nil), r.db.users...), nil
}

func (r memCategories) Create(_ context.Context, category *models.Category) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, c := range r.db.categories {
		if strings.EqualFold(c.Name, category.Name) {
			return gorm.ErrDuplicatedKey
		}
	}
	category.ID = uuid.NewString()
	category.CreatedAt = r.db.tick()
	category.UpdatedAt = category.CreatedAt
	r.db.categories = append(r.db.categories, *category)
	return nil
}

func (r memCategories) FindByID(_ context.Context, id string) (*models.Category, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, c := range r.db.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, missing(id)
}

func (r memCategories) FindByName(_ context.Context, name string) (*models.Category, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, c := range r.db.categories {
		if strings.EqualFold(c.Name, name) {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memCategories) List(context.Context) ([]models.Category, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	list := append([]models.Category(nil), r.db.categories...)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r memCategories) Update(_ context.Context, category *models.Category) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.categories {
		if r.db.categories[i].ID == category.ID {
			r.db.categories[i].Name = category.Name
			r.db.categories[i].UpdatedAt = r.db.tick()
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r memCategories) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, c := range r.db.categories {
		if c.ID != id {
			continue
		}
		for j := range r.db.posts {
			if p := r.db.posts[j].CategoryID; p != nil && *p == id {
				r.db.posts[j].CategoryID = nil
			}
		}
		r.db.categories = append(r.db.categories[:i], r.db.categories[i+1:]...)
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r memPosts) Create(_ context.Context, post *models.Post) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	post.ID = uuid.NewString()
	post.CreatedAt = r.db.tick()
	post.UpdatedAt = post.CreatedAt
	r.db.posts = append(r.db.posts, *post)
	return nil
}

func (r memPosts) FindByID(_ context.Context, id string) (*models.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, p := range r.db.posts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, missing(id)
}

func (r memPosts) Update(_ context.Context, post *models.Post) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.posts {
		if r.db.posts[i].ID == post.ID {
			r.db.posts[i].Title = post.Title
			r.db.posts[i].Content = post.Content
			r.db.posts[i].CategoryID = post.CategoryID
			r.db.posts[i].UpdatedAt = r.db.tick()
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r memPosts) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var commentIDs []string
	for _, c := range r.db.comments {
		if c.PostID == id {
			commentIDs = append(commentIDs, c.ID)
		}
	}
	r.db.deleteComments(commentIDs)
	r.db.likes = filter(r.db.likes, func(l models.Like) bool { return l.PostID != id })
	before := len(r.db.posts)
	r.db.posts = filter(r.db.posts, func(p models.Post) bool { return p.ID != id })
	if len(r.db.posts) == before {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r memPosts) matching(f repository.PostFilter) []models.Post {
	term := strings.ToLower(f.Search)
	var out []models.Post
	for _, p := range r.db.posts {
		if f.CategoryID != "" && (p.CategoryID == nil || *p.CategoryID != f.CategoryID) {
			continue
		}
		if f.AuthorID != "" && p.AuthorID != f.AuthorID {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Title), term) && !strings.Contains(strings.ToLower(p.Content), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func newestFirst(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
}

func (r memPosts) List(_ context.Context, f repository.PostFilter, limit, skip int) ([]models.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	posts := r.matching(f)
	newestFirst(posts)
	return window(posts, limit, skip), nil
}

func (r memPosts) Count(_ context.Context, f repository.PostFilter) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return int64(len(r.matching(f))), nil
}

func (r memPosts) ListPopular(_ context.Context, limit, skip int) ([]models.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	posts := append([]models.Post(nil), r.db.posts...)
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].LikesCount > posts[j].LikesCount })
	return window(posts, limit, skip), nil
}

func (r memPosts) ListAll(_ context.Context, f repository.PostFilter) ([]models.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	posts := r.matching(f)
	newestFirst(posts)
	return posts, nil
}

func (r memComments) Create(_ context.Context, comment *models.Comment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	comment.ID = uuid.NewString()
	comment.CreatedAt = r.db.tick()
	comment.UpdatedAt = comment.CreatedAt
	r.db.comments = append(r.db.comments, *comment)
	return nil
}

func (r memComments) FindByID(_ context.Context, id string) (*models.Comment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, c := range r.db.comments {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, missing(id)
}

func (r memComments) Update(_ context.Context, comment *models.Comment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.comments {
		if r.db.comments[i].ID == comment.ID {
			r.db.comments[i].Content = comment.Content
			r.db.comments[i].UpdatedAt = r.db.tick()
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r memComments) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.deleteComments([]string{id})
	return nil
}

// deleteComments removes the given comments, their reply subtrees and the
// comment likes on all of them. Callers hold mu.
func (db *memDB) deleteComments(ids []string) {
	doomed := map[string]bool{}
	for len(ids) > 0 {
		var next []string
		for _, id := range ids {
			doomed[id] = true
		}
		for _, c := range db.comments {
			if c.ParentID != nil && doomed[*c.ParentID] && !doomed[c.ID] {
				next = append(next, c.ID)
			}
		}
		ids = next
	}
	db.commentLikes = filter(db.commentLikes, func(l models.CommentLike) bool { return !doomed[l.CommentID] })
	db.comments = filter(db.comments, func(c models.Comment) bool { return !doomed[c.ID] })
}

func (r memComments) list(keep func(models.Comment) bool, newest bool) []models.Comment {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := filter(append([]models.Comment(nil), r.db.comments...), keep)
	if newest {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

func (r memComments) ListTopLevelByPost(_ context.Context, postID string) ([]models.Comment, error) {
	return r.list(func(c models.Comment) bool { return c.PostID == postID && c.ParentID == nil }, true), nil
}

func (r memComments) ListByPost(_ context.Context, postID string) ([]models.Comment, error) {
	return r.list(func(c models.Comment) bool { return c.PostID == postID }, false), nil
}

func (r memComments) ListReplies(_ context.Context, parentID string) ([]models.Comment, error) {
	return r.list(func(c models.Comment) bool { return c.ParentID != nil && *c.ParentID == parentID }, false), nil
}

func (r memComments) ListByAuthor(_ context.Context, authorID string) ([]models.Comment, error) {
	return r.list(func(c models.Comment) bool { return c.AuthorID == authorID }, false), nil
}

func (r memLikes) TogglePostLike(_ context.Context, userID, postID string) (*models.Like, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	idx := -1
	for i := range r.db.posts {
		if r.db.posts[i].ID == postID {
			idx = i
		}
	}
	if idx < 0 {
		return nil, false, missing(postID)
	}

	for i, l := range r.db.likes {
		if l.UserID == userID && l.PostID == postID {
			r.db.likes = append(r.db.likes[:i], r.db.likes[i+1:]...)
			if r.db.posts[idx].LikesCount > 0 {
				r.db.posts[idx].LikesCount--
			}
			return nil, false, nil
		}
	}

	like := models.Like{ID: uuid.NewString(), UserID: userID, PostID: postID, CreatedAt: r.db.tick()}
	r.db.likes = append(r.db.likes, like)
	r.db.posts[idx].LikesCount++
	return &like, true, nil
}

func (r memLikes) ToggleCommentLike(_ context.Context, userID, commentID string) (*models.CommentLike, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	idx := -1
	for i := range r.db.comments {
		if r.db.comments[i].ID == commentID {
			idx = i
		}
	}
	if idx < 0 {
		return nil, false, missing(commentID)
	}

	for i, l := range r.db.commentLikes {
		if l.UserID == userID && l.CommentID == commentID {
			r.db.commentLikes = append(r.db.commentLikes[:i], r.db.commentLikes[i+1:]...)
			if r.db.comments[idx].LikesCount > 0 {
				r.db.comments[idx].LikesCount--
			}
			return nil, false, nil
		}
	}

	like := models.CommentLike{ID: uuid.NewString(), UserID: userID, CommentID: commentID, CreatedAt: r.db.tick()}
	r.db.commentLikes = append(r.db.commentLikes, like)
	r.db.comments[idx].LikesCount++
	return &like, true, nil
}

func (r memLikes) ListByPost(_ context.Context, postID string) ([]models.Like, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return filter(append([]models.Like(nil), r.db.likes...), func(l models.Like) bool { return l.PostID == postID }), nil
}

func (r memLikes) ListByUser(_ context.Context, userID string) ([]models.Like, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return filter(append([]models.Like(nil), r.db.likes...), func(l models.Like) bool { return l.UserID == userID }), nil
}

func (r memLikes) ListCommentLikesByComment(_ context.Context, commentID string) ([]models.CommentLike, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return filter(append([]models.CommentLike(nil), r.db.commentLikes...), func(l models.CommentLike) bool { return l.CommentID == commentID }), nil
}

func (r memLikes) ListCommentLikesByUser(_ context.Context, userID string) ([]models.CommentLike, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return filter(append([]models.CommentLike(nil), r.db.commentLikes...), func(l models.CommentLike) bool { return l.UserID == userID }), nil
}

func filter[T any](rows []T, keep func(T) bool) []T {
	out := rows[:0]
	for _, row := range rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

func window[T any](rows []T, limit, skip int) []T {
	if skip >= len(rows) {
		return []T{}
	}
	rows = rows[skip:]
	if limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
