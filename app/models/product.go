package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bargaoui/rideaux/pkg/apperr"
)

// Category is the fixed catalog taxonomy.
type Category string

const (
	CategoryBlindsShades  Category = "Blinds & Shades"
	CategoryCurtainsDrape Category = "Curtains & Drapes"
	CategoryFurnishings   Category = "Furnishings"
	CategorySmartHome     Category = "Smart Home"
)

// categorySlugs maps URL slugs to categories for the /category/{cat} routes.
var categorySlugs = map[string]Category{
	"blinds-shades":  CategoryBlindsShades,
	"curtains-drapes": CategoryCurtainsDrape,
	"furnishings":    CategoryFurnishings,
	"smart-home":     CategorySmartHome,
}

// CategoryFromSlug resolves a URL slug like "curtains-drapes".
func CategoryFromSlug(slug string) (Category, error) {
	if c, ok := categorySlugs[slug]; ok {
		return c, nil
	}
	return "", apperr.New(apperr.Validation, "Invalid category: "+slug)
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryBlindsShades, CategoryCurtainsDrape, CategoryFurnishings, CategorySmartHome:
		return true
	}
	return false
}

// Dimensions are the physical size of a product in centimetres.
type Dimensions struct {
	Width  float64 `bson:"width" json:"width"`
	Height float64 `bson:"height" json:"height"`
}

// Product is one catalog entry.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	Category    Category           `bson:"category" json:"category"`
	Dimensions  Dimensions         `bson:"dimensions" json:"dimensions"`
	InStock     bool               `bson:"inStock" json:"inStock"`
	Subcategory []string           `bson:"subcategory" json:"subcategory"`
	Colors      []string           `bson:"colors" json:"colors"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Validate enforces the catalog invariants for a create.
func (p *Product) Validate() error {
	switch {
	case p.Name == "", p.Description == "", p.ImageURL == "":
		return apperr.New(apperr.Validation, "Please provide all required fields")
	case !ValidCategory(p.Category):
		return apperr.New(apperr.Validation, "Invalid category: "+string(p.Category))
	case p.Price < 0:
		return apperr.New(apperr.Validation, "Price must not be negative")
	case p.Dimensions.Width <= 0 || p.Dimensions.Height <= 0:
		return apperr.New(apperr.Validation, "Dimensions must be positive")
	}
	return nil
}

// ProductFilter is the conjunctive catalog predicate. Nil fields mean
// "no constraint"; multi-value fields match on intersection.
type ProductFilter struct {
	Category    *Category
	MinWidth    *float64
	MaxWidth    *float64
	MinHeight   *float64
	MaxHeight   *float64
	MinPrice    *float64
	MaxPrice    *float64
	InStock     *bool
	Subcategory []string
	Colors      []string
}

// BSON renders the filter as a Mongo query document.
func (f ProductFilter) BSON() bson.M {
	q := bson.M{}
	if f.Category != nil {
		q["category"] = *f.Category
	}
	if w := rangeQuery(f.MinWidth, f.MaxWidth); w != nil {
		q["dimensions.width"] = w
	}
	if h := rangeQuery(f.MinHeight, f.MaxHeight); h != nil {
		q["dimensions.height"] = h
	}
	if p := rangeQuery(f.MinPrice, f.MaxPrice); p != nil {
		q["price"] = p
	}
	if f.InStock != nil {
		q["inStock"] = *f.InStock
	}
	if len(f.Subcategory) > 0 {
		q["subcategory"] = bson.M{"$in": f.Subcategory}
	}
	if len(f.Colors) > 0 {
		q["colors"] = bson.M{"$in": f.Colors}
	}
	return q
}

func rangeQuery(min, max *float64) bson.M {
	if min == nil && max == nil {
		return nil
	}
	q := bson.M{}
	if min != nil {
		q["$gte"] = *min
	}
	if max != nil {
		q["$lte"] = *max
	}
	return q
}

// Matches applies the same predicate in-process. Used by the in-memory
// repository in tests; must stay in lockstep with BSON().
func (f ProductFilter) Matches(p Product) bool {
	if f.Category != nil && p.Category != *f.Category {
		return false
	}
	if !inRange(p.Dimensions.Width, f.MinWidth, f.MaxWidth) {
		return false
	}
	if !inRange(p.Dimensions.Height, f.MinHeight, f.MaxHeight) {
		return false
	}
	if !inRange(p.Price, f.MinPrice, f.MaxPrice) {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	if len(f.Subcategory) > 0 && !intersects(p.Subcategory, f.Subcategory) {
		return false
	}
	if len(f.Colors) > 0 && !intersects(p.Colors, f.Colors) {
		return false
	}
	return true
}

func inRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
