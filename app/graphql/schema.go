package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/app/services"
)

var dimensionsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Dimensions",
	Fields: graphql.Fields{
		"width":  &graphql.Field{Type: graphql.Float},
		"height": &graphql.Field{Type: graphql.Float},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.ID,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				product, _ := p.Source.(models.Product)
				return product.ID.Hex(), nil
			},
		},
		"name":        &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.Float},
		"imageUrl": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				product, _ := p.Source.(models.Product)
				return product.ImageURL, nil
			},
		},
		"category":    &graphql.Field{Type: graphql.String},
		"dimensions":  &graphql.Field{Type: dimensionsType},
		"inStock":     &graphql.Field{Type: graphql.Boolean},
		"subcategory": &graphql.Field{Type: graphql.NewList(graphql.String)},
		"colors":      &graphql.Field{Type: graphql.NewList(graphql.String)},
	},
})

// NewSchema builds the read-only catalog schema on top of the catalog service.
func NewSchema(catalog *services.CatalogService) (graphql.Schema, error) {
	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
					"inStock":  &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					var filter models.ProductFilter
					if slug, ok := p.Args["category"].(string); ok && slug != "" {
						cat, err := models.CategoryFromSlug(slug)
						if err != nil {
							return nil, err
						}
						filter.Category = &cat
					}
					if inStock, ok := p.Args["inStock"].(bool); ok {
						filter.InStock = &inStock
					}
					return catalog.List(p.Context, filter)
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, _ := p.Args["id"].(string)
					return catalog.Get(p.Context, id)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}
