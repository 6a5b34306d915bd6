package controllers

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/app/services"
	"github.com/bargaoui/rideaux/pkg/apperr"
	"github.com/bargaoui/rideaux/pkg/collection"
	"github.com/bargaoui/rideaux/pkg/ctx"
)

// ProductController serves the catalog.
type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// List returns products matching the query-string filter. Every supplied
// dimension constrains conjunctively; multi-value dimensions (colors,
// subcategory) match on intersection.
func (p *ProductController) List(c *ctx.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		fail(c, err)
		return
	}

	products, err := p.catalog.List(c.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(products)
}

// ListByCategory is List with the category forced from the URL slug.
func (p *ProductController) ListByCategory(c *ctx.Context) {
	category, err := models.CategoryFromSlug(c.Param("category"))
	if err != nil {
		fail(c, err)
		return
	}

	filter, err := parseFilter(c)
	if err != nil {
		fail(c, err)
		return
	}
	filter.Category = &category

	products, err := p.catalog.List(c.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(products)
}

// Get returns a single product.
func (p *ProductController) Get(c *ctx.Context) {
	product, err := p.catalog.Get(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(product)
}

type productInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	ImageURL    string            `json:"imageUrl"`
	Category    models.Category   `json:"category"`
	Dimensions  models.Dimensions `json:"dimensions"`
	InStock     *bool             `json:"inStock"`
	Subcategory []string          `json:"subcategory"`
	Colors      []string          `json:"colors"`
}

// toModel converts the input, rejecting a body that omits inStock. The field
// binds as *bool so an absent flag is distinguishable from an explicit false.
func (in productInput) toModel() (models.Product, error) {
	if in.InStock == nil {
		return models.Product{}, apperr.New(apperr.Validation, "Please provide all required fields")
	}
	return models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Dimensions:  in.Dimensions,
		InStock:     *in.InStock,
		Subcategory: in.Subcategory,
		Colors:      in.Colors,
	}, nil
}

// Create adds a catalog entry. Admin only.
func (p *ProductController) Create(c *ctx.Context) {
	var in productInput
	if !c.BindJSON(&in) {
		return
	}

	product, err := in.toModel()
	if err != nil {
		fail(c, err)
		return
	}
	if err := p.catalog.Create(c.Context(), &product); err != nil {
		fail(c, err)
		return
	}
	c.Created(product)
}

// CreateInCategory adds a catalog entry with the category forced from the
// URL slug, overriding anything in the body. Admin only.
func (p *ProductController) CreateInCategory(c *ctx.Context) {
	category, err := models.CategoryFromSlug(c.Param("category"))
	if err != nil {
		fail(c, err)
		return
	}

	var in productInput
	if !c.BindJSON(&in) {
		return
	}

	product, err := in.toModel()
	if err != nil {
		fail(c, err)
		return
	}
	product.Category = category
	if err := p.catalog.Create(c.Context(), &product); err != nil {
		fail(c, err)
		return
	}
	c.Created(product)
}

// Update applies a partial update. Only fields present in the body change.
// Admin only.
func (p *ProductController) Update(c *ctx.Context) {
	var in map[string]interface{}
	if !c.BindJSON(&in) {
		return
	}

	fields := bson.M{}
	for _, key := range []string{"name", "description", "price", "imageUrl", "category", "dimensions", "inStock", "subcategory", "colors"} {
		if v, ok := in[key]; ok {
			fields[key] = v
		}
	}

	product, err := p.catalog.Update(c.Context(), c.Param("id"), fields)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(product)
}

// Delete removes a product. Past orders keep their references. Admin only.
func (p *ProductController) Delete(c *ctx.Context) {
	if err := p.catalog.Delete(c.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.SuccessMessage("Product deleted successfully")
}

// parseFilter builds a ProductFilter from query params. Unknown params are
// ignored; malformed numbers fail with a validation error.
func parseFilter(c *ctx.Context) (models.ProductFilter, error) {
	var filter models.ProductFilter

	if raw := c.Query("category"); raw != "" {
		category, err := models.CategoryFromSlug(raw)
		if err != nil {
			// Also accept the display name ("Curtains & Drapes").
			if !models.ValidCategory(models.Category(raw)) {
				return filter, err
			}
			category = models.Category(raw)
		}
		filter.Category = &category
	}

	var err error
	if filter.MinPrice, err = floatParam(c, "minPrice"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = floatParam(c, "maxPrice"); err != nil {
		return filter, err
	}
	if filter.MinWidth, err = floatParam(c, "minWidth"); err != nil {
		return filter, err
	}
	if filter.MaxWidth, err = floatParam(c, "maxWidth"); err != nil {
		return filter, err
	}
	if filter.MinHeight, err = floatParam(c, "minHeight"); err != nil {
		return filter, err
	}
	if filter.MaxHeight, err = floatParam(c, "maxHeight"); err != nil {
		return filter, err
	}

	if raw := c.Query("inStock"); raw != "" {
		inStock := raw == "true" || raw == "1"
		filter.InStock = &inStock
	}

	filter.Subcategory = listParam(c, "subcategory")
	filter.Colors = listParam(c, "colors")

	return filter, nil
}

func floatParam(c *ctx.Context, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, invalidNumberErr(key)
	}
	return &v, nil
}

// listParam accepts both repeated params (?colors=a&colors=b) and a single
// comma-separated value (?colors=a,b). Duplicates collapse.
func listParam(c *ctx.Context, key string) []string {
	var out []string
	for _, v := range c.QueryValues(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return collection.Unique(out)
}
