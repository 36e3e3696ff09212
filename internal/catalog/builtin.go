package catalog

// Builtin returns the product line served when no database is configured.
func Builtin() []Product {
	return []Product{
		{
			ID:          "premium-cattle-feed",
			Name:        "Premium Cattle Feed",
			Description: "High-energy pelleted ration for beef and dairy cattle, balanced for steady weight gain and milk output.",
			Price:       24.99,
			Image:       "/images/products/premium-cattle-feed.jpg",
			AnimalType:  "Cattle",
			Benefits:    []string{"Improves weight gain", "Supports milk production", "Added trace minerals"},
			Sizes:       []string{"50 lb Bag", "1 ton Bulk"},
		},
		{
			ID:          "poultry-layer-pellets",
			Name:        "Poultry Layer Pellets",
			Description: "Complete layer ration with calcium and protein for strong shells and consistent egg production.",
			Price:       18.49,
			Image:       "/images/products/poultry-layer-pellets.jpg",
			AnimalType:  "Poultry",
			Benefits:    []string{"Stronger eggshells", "Consistent laying", "Rich yolk color"},
			Sizes:       []string{"25 lb Bag", "50 lb Bag", "1 ton Bulk"},
		},
		{
			ID:          "swine-grower-mix",
			Name:        "Swine Grower Mix",
			Description: "Corn and soybean meal grower formula with lysine for efficient feed conversion in growing pigs.",
			Price:       21.75,
			Image:       "/images/products/swine-grower-mix.jpg",
			AnimalType:  "Swine",
			Benefits:    []string{"Efficient feed conversion", "Lean muscle growth", "Highly palatable"},
			Sizes:       []string{"50 lb Bag", "1 ton Bulk"},
		},
		{
			ID:          "sheep-goat-ration",
			Name:        "Sheep & Goat Ration",
			Description: "Copper-safe textured feed for sheep, with vitamins for healthy wool and lambing.",
			Price:       19.99,
			Image:       "/images/products/sheep-goat-ration.jpg",
			AnimalType:  "Sheep",
			Benefits:    []string{"Copper safe for sheep", "Healthy wool growth", "Supports lambing"},
			Sizes:       []string{"40 lb Bag", "1 ton Bulk"},
		},
		{
			ID:          "equine-performance-blend",
			Name:        "Equine Performance Blend",
			Description: "Low-starch, high-fat sweet feed for performance horses and hard keepers.",
			Price:       32.5,
			Image:       "/images/products/equine-performance-blend.jpg",
			AnimalType:  "Horses",
			Benefits:    []string{"Sustained energy", "Glossy coat", "Low starch"},
			Sizes:       []string{"50 lb Bag"},
		},
		{
			ID:          "calf-starter-crumbles",
			Name:        "Calf Starter Crumbles",
			Description: "Medicated-free starter for calves from one week to weaning, promotes early rumen development.",
			Price:       27.25,
			Image:       "/images/products/calf-starter-crumbles.jpg",
			AnimalType:  "Cattle",
			Benefits:    []string{"Early rumen development", "Smooth weaning", "Highly digestible"},
			Sizes:       []string{"50 lb Bag"},
		},
		{
			ID:          "broiler-finisher",
			Name:        "Broiler Finisher",
			Description: "High-protein finisher crumble for meat birds in the final weeks before processing.",
			Price:       20.25,
			Image:       "/images/products/broiler-finisher.jpg",
			AnimalType:  "Poultry",
			Benefits:    []string{"Rapid finishing", "Improved feed efficiency", "Even flock weights"},
			Sizes:       []string{"50 lb Bag", "1 ton Bulk"},
		},
		{
			ID:          "sow-lactation-formula",
			Name:        "Sow Lactation Formula",
			Description: "Energy-dense ration for nursing sows to maintain condition and support litter growth.",
			Price:       23.4,
			Image:       "/images/products/sow-lactation-formula.jpg",
			AnimalType:  "Swine",
			Benefits:    []string{"Maintains sow condition", "Heavier weaning weights", "Added fiber"},
			Sizes:       []string{"50 lb Bag", "1 ton Bulk"},
		},
		{
			ID:          "senior-horse-feed",
			Name:        "Senior Horse Feed",
			Description: "Easy-to-chew complete feed with beet pulp for older horses with dental wear.",
			Price:       29.95,
			Image:       "/images/products/senior-horse-feed.jpg",
			AnimalType:  "Horses",
			Benefits:    []string{"Easy to chew", "Complete nutrition", "Supports joint health"},
			Sizes:       []string{"50 lb Bag"},
		},
		{
			ID:          "mineral-lick-block",
			Name:        "Mineral Lick Block",
			Description: "Weather-resistant free-choice block with salt, trace minerals and vitamins for pasture cattle.",
			Price:       14.99,
			Image:       "/images/products/mineral-lick-block.jpg",
			AnimalType:  "Cattle",
			Benefits:    []string{"Free-choice supplementation", "Weather resistant", "Trace minerals"},
			Sizes:       []string{"33 lb Block", "125 lb Tub"},
		},
		{
			ID:          "lamb-creep-feed",
			Name:        "Lamb Creep Feed",
			Description: "Palatable creep pellet that gets lambs onto dry feed early for faster growth.",
			Price:       22.1,
			Image:       "/images/products/lamb-creep-feed.jpg",
			AnimalType:  "Sheep",
			Benefits:    []string{"Early dry feed intake", "Faster growth", "Decoquinate free"},
			Sizes:       []string{"50 lb Bag"},
		},
		{
			ID:          "organic-scratch-grains",
			Name:        "Organic Scratch Grains",
			Description: "Certified organic cracked corn, wheat and barley treat mix for backyard flocks.",
			Price:       16.75,
			Image:       "/images/products/organic-scratch-grains.jpg",
			AnimalType:  "Poultry",
			Benefits:    []string{"Certified organic", "Encourages foraging", "No fillers"},
			Sizes:       []string{"25 lb Bag", "50 lb Bag"},
		},
	}
}
