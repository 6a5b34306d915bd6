package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/bargaoui/rideaux/pkg/ctx"
)

type queryRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Handler serves POST /api/graphql against the given schema.
func Handler(schema graphql.Schema) ctx.HandlerFunc {
	return func(c *ctx.Context) {
		var req queryRequest
		if _, err := c.ShouldBindJSON(&req); err != nil {
			c.Error(400, "Invalid request body")
			return
		}
		if req.Query == "" {
			c.Error(400, "Query is required")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        c.Context(),
		})
		c.JSON(200, result)
	}
}
