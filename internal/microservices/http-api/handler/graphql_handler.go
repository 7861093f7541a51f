package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go"
)

// Executor runs a GraphQL operation; *graphql.Schema implements it.
type Executor interface {
	Exec(ctx context.Context, queryString, operationName string, variables map[string]interface{}) *graphql.Response
}

type GraphQLHandler struct {
	schema Executor
}

func NewGraphQLHandler(schema Executor) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

type graphqlRequest struct {
	Query         string                 `json:"query" binding:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Serve executes a GraphQL request. Operation failures are reported inside
// the response body with status 200; only malformed requests get 400.
func (h *GraphQLHandler) Serve(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []gin.H{{"message": "invalid GraphQL request: " + err.Error()}},
		})
		return
	}

	resp := h.schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)
	c.JSON(http.StatusOK, resp)
}
