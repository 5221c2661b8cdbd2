package entity

import "time"

type Category struct {
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	IsActive    bool      `json:"isActive" firestore:"isActive"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// DefaultCategories is the agent category list the app ships with.
func DefaultCategories() []Category {
	seeds := []Category{
		{Name: "Fashion & Apparel", Description: "Clothing, accessories, and fashion items"},
		{Name: "Jewelry & Watches", Description: "Jewelry, watches, and luxury accessories"},
		{Name: "Beauty & Personal Care", Description: "Cosmetics, skincare, and personal care products"},
		{Name: "Footwear", Description: "Shoes, boots, and footwear accessories"},
		{Name: "Handbags & Bags", Description: "Bags, purses, and travel accessories"},
		{Name: "Technology & Electronics", Description: "Electronic devices and gadgets"},
		{Name: "Smartphones", Description: "Mobile phones and accessories"},
		{Name: "Computers & Laptops", Description: "Computers, laptops, and peripherals"},
		{Name: "Gaming", Description: "Gaming consoles, games, and accessories"},
		{Name: "Audio & Music", Description: "Headphones, speakers, and audio equipment"},
		{Name: "Cameras & Photography", Description: "Cameras, lenses, and photography equipment"},
		{Name: "Home & Living", Description: "Home decor, furniture, and household items"},
		{Name: "Kitchen & Dining", Description: "Kitchen appliances and dining accessories"},
		{Name: "Garden & Outdoor", Description: "Gardening tools and outdoor equipment"},
		{Name: "Sports & Fitness", Description: "Sports equipment, fitness gear, and athletic wear"},
		{Name: "Outdoor Recreation", Description: "Camping, hiking, and outdoor adventure gear"},
		{Name: "Automotive", Description: "Car parts, accessories, and automotive products"},
		{Name: "Books & Media", Description: "Books, magazines, and digital media"},
		{Name: "Toys & Games", Description: "Toys, board games, and entertainment products"},
		{Name: "Health & Wellness", Description: "Health supplements, medical devices, and wellness products"},
		{Name: "Pet Supplies", Description: "Pet food, toys, and accessories"},
		{Name: "Baby & Kids", Description: "Baby products, children's clothing, and toys"},
		{Name: "Office & Business", Description: "Office supplies, business equipment, and professional tools"},
		{Name: "Art & Crafts", Description: "Art supplies, craft materials, and creative tools"},
		{Name: "Musical Instruments", Description: "Musical instruments and accessories"},
		{Name: "Food & Beverages", Description: "Gourmet foods, beverages, and specialty items"},
		{Name: "Travel & Tourism", Description: "Travel accessories, luggage, and tourism products"},
	}

	for i := range seeds {
		seeds[i].IsActive = true
	}
	return seeds
}
