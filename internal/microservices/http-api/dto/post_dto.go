package dto

// CreatePostRequest for createPost. CategoryName is free text; it is
// normalized and resolved to a category row.
type CreatePostRequest struct {
	Title        string  `validate:"required,max=300"`
	Content      string  `validate:"required"`
	CategoryName *string `validate:"omitempty,max=100"`
}

// UpdatePostRequest for updatePost (partial updates allowed)
type UpdatePostRequest struct {
	Title    *string `validate:"omitempty,max=300"`
	Content  *string
	Category OptionalString
}

// OptionalString separates an omitted argument from an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

// Cleared reports an explicit null or empty string.
func (o OptionalString) Cleared() bool {
	return o.Set && (o.Value == nil || *o.Value == "")
}
