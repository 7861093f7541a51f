package dto

// CreateCommentRequest for createComment
type CreateCommentRequest struct {
	PostID  string `validate:"required"`
	Content string `validate:"required,max=5000"`
}

// ReplyRequest for replyToComment; the post is taken from the parent.
type ReplyRequest struct {
	CommentID string `validate:"required"`
	Content   string `validate:"required,max=5000"`
}

// UpdateCommentRequest for updateComment
type UpdateCommentRequest struct {
	Content string `validate:"required,max=5000"`
}
