package inventory

// SeedItems returns the corner-store sample stock used to initialise a fresh
// database.
func SeedItems() []ItemFields {
	return []ItemFields{
		// Beverages
		sample("Bisleri Water (500ml)", 50, 115, 15, 20.00, 5, "Pure mineral water"),
		sample("Thums Up (300ml)", 40, 93, 8, 35.00, 10, "Strong carbonated cola drink"),
		sample("Red Bull (250ml)", 125, 12, 18, 70.00, 8, "Energy-boosting drink"),
		sample("Nescafe Coffee (hot, large)", 55, 11, 14, 40.00, 5, "Freshly brewed instant coffee"),
		sample("Real Fruit Juice (200ml)", 45, 11, 9, 35.00, 5, "Healthy mixed fruit juice"),
		sample("Masala Chai (Cup)", 100, 11, 12, 20.00, 5, "Authentic Indian spiced tea"),

		// Snacks
		sample("Lays Chips (small)", 50, 34, 16, 20.00, 10, "Crispy salted potato chips"),
		sample("Dairy Milk Chocolate", 50, 6, 19, 35.00, 5, "Milk chocolate bar"),
		sample("Britannia Nutri Bar", 40, 3, 12, 30.00, 8, "Healthy granola bar with nuts"),
		sample("Parle-G Biscuits (large pack)", 80, 8, 8, 40.00, 5, "Classic glucose biscuits"),
		sample("Haldiram's Namkeen (small)", 60, 5, 10, 40.00, 8, "Spicy and crunchy Indian snack"),

		// Personal care
		sample("Colgate Toothpaste (small)", 20, 1, 9, 15.00, 5, "Fluoride toothpaste for strong teeth"),
		sample("Dettol Hand Sanitizer (small)", 40, 2, 13, 25.00, 8, "Antibacterial sanitizer for hygiene"),
		sample("Crocin Pain Reliever (strip)", 40, 1, 5, 35.00, 3, "Over-the-counter paracetamol tablet"),
		sample("Band-Aid Strips (box)", 25, 0, 10, 20.00, 5, "Adhesive bandages for wounds"),
		sample("Himalaya Sunscreen (small)", 150, 6, 5, 120.00, 3, "Herbal sunscreen lotion"),
		sample("Mediker Anti-Lice Shampoo", 100, 6, 8, 75.00, 5, "Effective shampoo for lice removal"),

		// Household
		sample("Eveready AA Batteries (4-pack)", 100, 1, 5, 70.00, 3, "Long-lasting alkaline batteries"),
		sample("Syska LED Bulb (9W, 2-pack)", 200, 3, 3, 150.00, 2, "Energy-efficient LED bulbs"),
		sample("Garbage Bags (small, 10-pack)", 70, 5, 10, 50.00, 5, "Disposable trash bags for home use"),
		sample("Origami Paper Towels (single roll)", 40, 3, 8, 30.00, 5, "Absorbent paper towels"),
		sample("Harpic Toilet Cleaner (500ml)", 105, 2, 5, 95.00, 3, "Powerful toilet cleaning liquid"),

		// Others
		sample("Lottery Tickets", 20, 17, 20, 15.00, 10, "Government-approved lottery tickets"),
		sample("The Times of India Newspaper", 12, 22, 20, 10.00, 5, "Daily national newspaper"),
		sample("Ball Pens (5-pack)", 70, 1, 8, 50.00, 5, "Smooth writing ball pens"),
		sample("Natraj Pencils (10-pack)", 60, 1, 8, 30.00, 5, "High-quality HB pencils"),
		sample("Classmate Notebook (200 pages)", 50, 1, 8, 40.00, 5, "Spiral-bound ruled notebook"),
	}
}

func sample(name string, price float64, sold, left int64, cost float64, reorder int64, desc string) ItemFields {
	return ItemFields{
		Name:         &name,
		Price:        &price,
		UnitsSold:    &sold,
		UnitsLeft:    &left,
		CostPrice:    &cost,
		ReorderPoint: &reorder,
		Description:  &desc,
	}
}
