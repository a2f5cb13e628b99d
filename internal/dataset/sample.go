// Package dataset builds product graphs: a built-in sample catalog and a
// loader for external JSON catalog files.
package dataset

import "github.com/shopkit/shelfgraph/internal/graph"

// Sample returns the built-in grocery catalog: dairy and snack products with
// their categories, brands, and similarity links.
func Sample() *graph.Graph {
	g := graph.New()

	// Categories
	g.AddNode(graph.NewCategory("cat_dairy", "Dairy Products"))
	g.AddNode(graph.NewCategory("cat_milk", "Milk"))
	g.AddNode(graph.NewCategory("cat_yogurt", "Yogurt"))
	g.AddNode(graph.NewCategory("cat_beverages", "Beverages"))
	g.AddNode(graph.NewCategory("cat_snacks", "Snacks"))
	g.AddNode(graph.NewCategory("cat_biscuits", "Biscuits"))
	g.AddNode(graph.NewCategory("cat_chips", "Chips"))
	g.AddNode(graph.NewCategory("cat_bread", "Bread & Bakery"))

	// Brands
	g.AddNode(graph.NewBrand("brand_amul", "Amul"))
	g.AddNode(graph.NewBrand("brand_mother_dairy", "Mother Dairy"))
	g.AddNode(graph.NewBrand("brand_nestle", "Nestle"))
	g.AddNode(graph.NewBrand("brand_britannia", "Britannia"))
	g.AddNode(graph.NewBrand("brand_parle", "Parle"))
	g.AddNode(graph.NewBrand("brand_lays", "Lays"))
	g.AddNode(graph.NewBrand("brand_kurkure", "Kurkure"))

	// Dairy products
	g.AddNode(graph.NewProduct("prod_amul_gold", graph.ProductData{
		Name:       "Amul Gold Milk 1L",
		Price:      66,
		InStock:    true,
		Attributes: []string{"full_cream", "pasteurized"},
	}))
	g.AddNode(graph.NewProduct("prod_amul_taaza", graph.ProductData{
		Name:       "Amul Taaza Milk 1L",
		Price:      54,
		InStock:    false, // out of stock
		Attributes: []string{"toned", "pasteurized"},
	}))
	g.AddNode(graph.NewProduct("prod_mother_dairy_full", graph.ProductData{
		Name:       "Mother Dairy Full Cream 1L",
		Price:      64,
		InStock:    true,
		Attributes: []string{"full_cream", "pasteurized"},
	}))
	g.AddNode(graph.NewProduct("prod_nestle_slim", graph.ProductData{
		Name:       "Nestle Slim Milk 1L",
		Price:      58,
		InStock:    true,
		Attributes: []string{"low_fat", "lactose_free", "pasteurized"},
	}))
	g.AddNode(graph.NewProduct("prod_mother_dairy_toned", graph.ProductData{
		Name:       "Mother Dairy Toned Milk 1L",
		Price:      52,
		InStock:    true,
		Attributes: []string{"toned", "pasteurized"},
	}))
	g.AddNode(graph.NewProduct("prod_amul_yogurt", graph.ProductData{
		Name:       "Amul Yogurt 400g",
		Price:      45,
		InStock:    true,
		Attributes: []string{"probiotic", "no_sugar"},
	}))

	// Biscuit products
	g.AddNode(graph.NewProduct("prod_parle_g", graph.ProductData{
		Name:       "Parle-G Biscuits 200g",
		Price:      20,
		InStock:    false, // out of stock
		Attributes: []string{"vegetarian", "glucose"},
	}))
	g.AddNode(graph.NewProduct("prod_britannia_marie", graph.ProductData{
		Name:       "Britannia Marie Gold 200g",
		Price:      25,
		InStock:    true,
		Attributes: []string{"vegetarian", "low_sugar"},
	}))
	g.AddNode(graph.NewProduct("prod_parle_monaco", graph.ProductData{
		Name:       "Parle Monaco 200g",
		Price:      22,
		InStock:    true,
		Attributes: []string{"vegetarian", "salty"},
	}))
	g.AddNode(graph.NewProduct("prod_britannia_good_day", graph.ProductData{
		Name:       "Britannia Good Day 200g",
		Price:      30,
		InStock:    true,
		Attributes: []string{"vegetarian", "butter_cookies"},
	}))
	g.AddNode(graph.NewProduct("prod_parle_krackjack", graph.ProductData{
		Name:       "Parle Krackjack 200g",
		Price:      20,
		InStock:    true,
		Attributes: []string{"vegetarian", "salty"},
	}))

	// Chips products
	g.AddNode(graph.NewProduct("prod_lays_classic", graph.ProductData{
		Name:       "Lays Classic Salted 100g",
		Price:      20,
		InStock:    false, // out of stock
		Attributes: []string{"vegetarian", "salty"},
	}))
	g.AddNode(graph.NewProduct("prod_lays_cream_onion", graph.ProductData{
		Name:       "Lays Cream & Onion 100g",
		Price:      20,
		InStock:    true,
		Attributes: []string{"vegetarian"},
	}))
	g.AddNode(graph.NewProduct("prod_kurkure_masala", graph.ProductData{
		Name:       "Kurkure Masala Munch 100g",
		Price:      20,
		InStock:    true,
		Attributes: []string{"vegetarian", "spicy"},
	}))

	// Category membership
	g.AddEdge("prod_amul_gold", "cat_milk", graph.RelationIsA)
	g.AddEdge("prod_amul_taaza", "cat_milk", graph.RelationIsA)
	g.AddEdge("prod_mother_dairy_full", "cat_milk", graph.RelationIsA)
	g.AddEdge("prod_nestle_slim", "cat_milk", graph.RelationIsA)
	g.AddEdge("prod_mother_dairy_toned", "cat_milk", graph.RelationIsA)
	g.AddEdge("cat_milk", "cat_dairy", graph.RelationIsA)

	g.AddEdge("prod_amul_yogurt", "cat_yogurt", graph.RelationIsA)
	g.AddEdge("cat_yogurt", "cat_dairy", graph.RelationIsA)

	g.AddEdge("prod_parle_g", "cat_biscuits", graph.RelationIsA)
	g.AddEdge("prod_britannia_marie", "cat_biscuits", graph.RelationIsA)
	g.AddEdge("prod_parle_monaco", "cat_biscuits", graph.RelationIsA)
	g.AddEdge("prod_britannia_good_day", "cat_biscuits", graph.RelationIsA)
	g.AddEdge("prod_parle_krackjack", "cat_biscuits", graph.RelationIsA)
	g.AddEdge("cat_biscuits", "cat_snacks", graph.RelationIsA)

	g.AddEdge("prod_lays_classic", "cat_chips", graph.RelationIsA)
	g.AddEdge("prod_lays_cream_onion", "cat_chips", graph.RelationIsA)
	g.AddEdge("prod_kurkure_masala", "cat_chips", graph.RelationIsA)
	g.AddEdge("cat_chips", "cat_snacks", graph.RelationIsA)

	// Brand membership
	g.AddEdge("prod_amul_gold", "brand_amul", graph.RelationHasBrand)
	g.AddEdge("prod_amul_taaza", "brand_amul", graph.RelationHasBrand)
	g.AddEdge("prod_amul_yogurt", "brand_amul", graph.RelationHasBrand)
	g.AddEdge("prod_mother_dairy_full", "brand_mother_dairy", graph.RelationHasBrand)
	g.AddEdge("prod_mother_dairy_toned", "brand_mother_dairy", graph.RelationHasBrand)
	g.AddEdge("prod_nestle_slim", "brand_nestle", graph.RelationHasBrand)
	g.AddEdge("prod_parle_g", "brand_parle", graph.RelationHasBrand)
	g.AddEdge("prod_parle_monaco", "brand_parle", graph.RelationHasBrand)
	g.AddEdge("prod_parle_krackjack", "brand_parle", graph.RelationHasBrand)
	g.AddEdge("prod_britannia_marie", "brand_britannia", graph.RelationHasBrand)
	g.AddEdge("prod_britannia_good_day", "brand_britannia", graph.RelationHasBrand)
	g.AddEdge("prod_lays_classic", "brand_lays", graph.RelationHasBrand)
	g.AddEdge("prod_lays_cream_onion", "brand_lays", graph.RelationHasBrand)
	g.AddEdge("prod_kurkure_masala", "brand_kurkure", graph.RelationHasBrand)

	// Similarity links
	g.AddWeightedEdge("prod_amul_gold", "prod_mother_dairy_full", graph.RelationSimilarTo, 0.9)
	g.AddWeightedEdge("prod_mother_dairy_full", "prod_amul_gold", graph.RelationSimilarTo, 0.9)
	g.AddWeightedEdge("prod_parle_g", "prod_britannia_marie", graph.RelationSimilarTo, 0.8)
	g.AddWeightedEdge("prod_britannia_marie", "prod_parle_g", graph.RelationSimilarTo, 0.8)
	g.AddWeightedEdge("prod_lays_classic", "prod_lays_cream_onion", graph.RelationSimilarTo, 0.95)
	g.AddWeightedEdge("prod_lays_cream_onion", "prod_lays_classic", graph.RelationSimilarTo, 0.95)

	return g
}
