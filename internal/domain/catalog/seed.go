// internal/domain/catalog/seed.go
package catalog

// SeedProducts returns the initial outdoor gear catalog used to populate
// an empty products table.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Hiking Backpack 40L",
			Description: "Durable backpack with 40L capacity for multi-day treks. Features multiple compartments and ergonomic design.",
			Price:       12999,
			Category:    "Backpacks",
			Image:       "https://images.unsplash.com/photo-1622260614153-03223fb72052",
			Stock:       25,
		},
		{
			ID:          "2",
			Name:        "Trail Runner Pro Shoes",
			Description: "Lightweight trail running shoes with excellent grip and water-resistant features.",
			Price:       8999,
			Category:    "Footwear",
			Image:       "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa",
			Stock:       45,
		},
		{
			ID:          "3",
			Name:        "Ultralight Tent 2-Person",
			Description: "Compact 2-person tent weighing only 3.5 lbs, perfect for backpacking.",
			Price:       24999,
			Category:    "Camping",
			Image:       "https://images.unsplash.com/photo-1578645510447-e20b4311e3ce",
			Stock:       18,
		},
		{
			ID:          "4",
			Name:        "Waterproof Rain Jacket",
			Description: "Breathable waterproof jacket with sealed seams and adjustable hood.",
			Price:       7999,
			Category:    "Clothing",
			Image:       "https://images.unsplash.com/photo-1536678053357-2ab4c3a6639e",
			Stock:       50,
		},
		{
			ID:          "5",
			Name:        "Trekking Poles (Pair)",
			Description: "Adjustable aluminum trekking poles with cork grips and shock absorption.",
			Price:       5999,
			Category:    "Accessories",
			Image:       "https://images.unsplash.com/photo-1571687949921-1306bfb24f72",
			Stock:       30,
		},
		{
			ID:          "6",
			Name:        "Sleeping Bag 20°F",
			Description: "Mummy-style sleeping bag rated for 20°F with water-resistant down insulation.",
			Price:       16999,
			Category:    "Camping",
			Image:       "https://images.unsplash.com/photo-1505400485302-2b3b15f2cb4c",
			Stock:       22,
		},
		{
			ID:          "7",
			Name:        "Water Filter System",
			Description: "Portable water filtration system removes 99.9% of bacteria and protozoa.",
			Price:       3999,
			Category:    "Accessories",
			Image:       "https://images.unsplash.com/photo-1535585209827-a15fcdbc4c2d",
			Stock:       35,
		},
		{
			ID:          "8",
			Name:        "Climbing Harness",
			Description: "Adjustable climbing harness with padded waist and leg loops for all-day comfort.",
			Price:       7499,
			Category:    "Climbing",
			Image:       "https://images.unsplash.com/photo-1522163182402-834f871fd851",
			Stock:       15,
		},
		{
			ID:          "9",
			Name:        "Headlamp Rechargeable",
			Description: "USB rechargeable headlamp with 300 lumens and multiple lighting modes.",
			Price:       4499,
			Category:    "Accessories",
			Image:       "https://images.unsplash.com/photo-1504945005722-33670a55bd39",
			Stock:       40,
		},
		{
			ID:          "10",
			Name:        "Insulated Water Bottle 32oz",
			Description: "Vacuum insulated stainless steel water bottle keeps drinks cold for 24 hours.",
			Price:       3499,
			Category:    "Accessories",
			Image:       "https://images.unsplash.com/photo-1602143407151-7111542de6e8",
			Stock:       60,
		},
		{
			ID:          "11",
			Name:        "Navigation Compass",
			Description: "Professional grade compass with declination adjustment and luminous display.",
			Price:       2999,
			Category:    "Navigation",
			Image:       "https://images.unsplash.com/photo-1533551068233-c4d102580986",
			Stock:       25,
		},
		{
			ID:          "12",
			Name:        "Merino Wool Base Layer",
			Description: "Lightweight merino wool top that regulates temperature and prevents odor.",
			Price:       6999,
			Category:    "Clothing",
			Image:       "https://images.unsplash.com/photo-1516762689617-e1cffcef479d",
			Stock:       32,
		},
		{
			ID:          "13",
			Name:        "Trekking Backpack 65L",
			Description: "Large capacity trekking backpack with internal frame and rain cover.",
			Price:       19999,
			Category:    "Backpacks",
			Image:       "https://images.unsplash.com/photo-1501196354995-cbb51c65aaea",
			Stock:       12,
		},
		{
			ID:          "14",
			Name:        "Solar Charging Panel",
			Description: "Portable 15W solar panel for charging devices in the wilderness.",
			Price:       8999,
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1617788138017-80ad40651399",
			Stock:       18,
		},
		{
			ID:          "15",
			Name:        "Hiking Socks 3-Pack",
			Description: "Cushioned merino wool blend hiking socks with arch support and blister prevention.",
			Price:       2499,
			Category:    "Clothing",
			Image:       "https://images.unsplash.com/photo-1586350977771-b3b0abd50c82",
			Stock:       75,
		},
	}
}
