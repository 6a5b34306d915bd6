package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func ptr[T any](v T) *T { return &v }

func sampleProduct() Product {
	return Product{
		Name:        "Rideau Velours Royal",
		Description: "Rideau en velours épais",
		Price:       210,
		ImageURL:    "/storage/products/rideau.jpg",
		Category:    CategoryCurtainsDrape,
		Dimensions:  Dimensions{Width: 140, Height: 260},
		InStock:     true,
		Subcategory: []string{"velvet", "eyelet"},
		Colors:      []string{"bordeaux", "navy"},
	}
}

func TestCategoryFromSlug(t *testing.T) {
	for slug, want := range map[string]Category{
		"blinds-shades":   CategoryBlindsShades,
		"curtains-drapes": CategoryCurtainsDrape,
		"furnishings":     CategoryFurnishings,
		"smart-home":      CategorySmartHome,
	} {
		got, err := CategoryFromSlug(slug)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := CategoryFromSlug("garden")
	assert.Error(t, err)
}

func TestProductValidate(t *testing.T) {
	p := sampleProduct()
	assert.NoError(t, p.Validate())

	missing := sampleProduct()
	missing.Name = ""
	assert.Error(t, missing.Validate())

	badCategory := sampleProduct()
	badCategory.Category = "Garden"
	assert.Error(t, badCategory.Validate())

	negative := sampleProduct()
	negative.Price = -1
	assert.Error(t, negative.Validate())

	flat := sampleProduct()
	flat.Dimensions.Height = 0
	assert.Error(t, flat.Validate())
}

func TestProductFilterIsConjunctive(t *testing.T) {
	p := sampleProduct()

	// Every dimension matches.
	f := ProductFilter{
		Category: ptr(CategoryCurtainsDrape),
		MinPrice: ptr(100.0),
		MaxPrice: ptr(300.0),
		InStock:  ptr(true),
		Colors:   []string{"navy"},
	}
	assert.True(t, f.Matches(p))

	// One failing dimension rejects the whole product.
	f.MaxPrice = ptr(150.0)
	assert.False(t, f.Matches(p))
}

func TestProductFilterNilMeansNoConstraint(t *testing.T) {
	var f ProductFilter
	assert.True(t, f.Matches(sampleProduct()))
}

func TestProductFilterMultiValueIntersection(t *testing.T) {
	p := sampleProduct()

	// Any overlap matches.
	assert.True(t, ProductFilter{Colors: []string{"green", "navy"}}.Matches(p))
	// No overlap rejects.
	assert.False(t, ProductFilter{Colors: []string{"green", "yellow"}}.Matches(p))
	assert.True(t, ProductFilter{Subcategory: []string{"velvet"}}.Matches(p))
}

func TestProductFilterRanges(t *testing.T) {
	p := sampleProduct() // width 140, height 260

	assert.True(t, ProductFilter{MinWidth: ptr(140.0)}.Matches(p), "ranges are inclusive")
	assert.True(t, ProductFilter{MaxHeight: ptr(260.0)}.Matches(p))
	assert.False(t, ProductFilter{MinWidth: ptr(141.0)}.Matches(p))
	assert.False(t, ProductFilter{MaxHeight: ptr(259.0)}.Matches(p))
}

func TestProductFilterBSON(t *testing.T) {
	f := ProductFilter{
		Category: ptr(CategoryBlindsShades),
		MinPrice: ptr(50.0),
		MaxPrice: ptr(100.0),
		InStock:  ptr(true),
		Colors:   []string{"white"},
	}
	q := f.BSON()

	assert.Equal(t, CategoryBlindsShades, q["category"])
	assert.Equal(t, bson.M{"$gte": 50.0, "$lte": 100.0}, q["price"])
	assert.Equal(t, true, q["inStock"])
	assert.Equal(t, bson.M{"$in": []string{"white"}}, q["colors"])

	assert.Empty(t, ProductFilter{}.BSON(), "empty filter must match everything")
}
