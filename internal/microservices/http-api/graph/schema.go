package graph

import (
	_ "embed"

	"github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaSDL string

// NewSchema parses the API schema against r. It panics if a resolver method
// does not match the schema.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(schemaSDL, r,
		graphql.MaxDepth(12),
		graphql.Logger(&panicLogger{logger: r.logger}),
	)
}
