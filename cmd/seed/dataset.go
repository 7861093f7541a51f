package main

type seedUser struct {
	Email    string
	Password string
	Name     string
}

type seedPost struct {
	Title    string
	Content  string
	Author   string // user email
	Category string
}

type seedComment struct {
	Content string
	Author  string
	Post    string // post title
	ReplyTo int    // 1-based index into comments, 0 for top level
}

type seedLike struct {
	User string
	Post string
}

type seedCommentLike struct {
	User    string
	Comment int // 1-based index into comments
}

var users = []seedUser{
	{Email: "demo@y.com", Password: "demodemo", Name: "demo"},
	{Email: "user1@example.com", Password: "password123", Name: "User One"},
	{Email: "user2@example.com", Password: "password123", Name: "User Two"},
}

var categories = []string{"Technology", "Science", "Art", "Business", "Health", "Education"}

var posts = []seedPost{
	{
		Title:    "Getting Started with GraphQL",
		Content:  "GraphQL is a query language for your API, and a server-side runtime for executing queries.",
		Author:   "demo@y.com",
		Category: "Technology",
	},
	{
		Title:    "The Future of AI",
		Content:  "Artificial Intelligence is transforming how we interact with technology.",
		Author:   "user1@example.com",
		Category: "Technology",
	},
	{
		Title:    "Latest Scientific Discoveries",
		Content:  "Recent breakthroughs in quantum physics are changing our understanding of the universe.",
		Author:   "user2@example.com",
		Category: "Science",
	},
	{
		Title:    "The Importance of Mental Health",
		Content:  "Mental health is just as important as physical health for overall well-being.",
		Author:   "demo@y.com",
		Category: "Health",
	},
	{
		Title:    "Starting Your Own Business",
		Content:  "Entrepreneurship requires dedication, planning, and a willingness to take risks.",
		Author:   "user1@example.com",
		Category: "Business",
	},
	{
		Title:    "Online Learning Trends",
		Content:  "The rise of online education is transforming traditional learning methods.",
		Author:   "user2@example.com",
		Category: "Education",
	},
}

var comments = []seedComment{
	{Content: "Great introduction to GraphQL!", Author: "user1@example.com", Post: "Getting Started with GraphQL"},
	{Content: "I found this very helpful.", Author: "user2@example.com", Post: "Getting Started with GraphQL"},
	{Content: "Thanks for your feedback!", Author: "demo@y.com", ReplyTo: 1},
	{Content: "This is an important topic that needs more attention.", Author: "demo@y.com", Post: "The Importance of Mental Health"},
	{Content: "Great advice for aspiring entrepreneurs!", Author: "user2@example.com", Post: "Starting Your Own Business"},
	{Content: "Online learning has been a game changer for me.", Author: "user1@example.com", Post: "Online Learning Trends"},
}

var likes = []seedLike{
	{User: "user1@example.com", Post: "Getting Started with GraphQL"},
	{User: "user2@example.com", Post: "Getting Started with GraphQL"},
	{User: "demo@y.com", Post: "The Future of AI"},
	{User: "user1@example.com", Post: "The Importance of Mental Health"},
	{User: "user2@example.com", Post: "Starting Your Own Business"},
	{User: "demo@y.com", Post: "Online Learning Trends"},
}

var commentLikes = []seedCommentLike{
	{User: "demo@y.com", Comment: 1},
	{User: "user1@example.com", Comment: 2},
}
