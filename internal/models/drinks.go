package models

// UnknownDrink is the placeholder returned for entries whose drink-type id
// is no longer in the catalog. Zero nominal size.
var UnknownDrink = DrinkType{ID: "", Name: "Unknown", Milliliters: 0, Icon: "help-outline", Color: "#CCCCCC", Category: CategoryOther}

// DrinkCatalog is the static beverage catalog seeded at build time.
var DrinkCatalog = []DrinkType{
	// Water
	{ID: "1", Name: "Water", Milliliters: 250, Icon: "water-drop", Color: "#00D4FF", Category: CategoryWater},
	{ID: "2", Name: "Sparkling Water", Milliliters: 250, Icon: "bubble-chart", Color: "#00D4FF", Category: CategoryWater},
	{ID: "3", Name: "Flavored Water", Milliliters: 300, Icon: "water-drop", Color: "#00D4FF", Category: CategoryWater},

	// Coffee
	{ID: "4", Name: "Espresso", Milliliters: 30, Icon: "coffee", Color: "#8B4513", Category: CategoryCoffee},
	{ID: "5", Name: "Americano", Milliliters: 200, Icon: "coffee", Color: "#8B4513", Category: CategoryCoffee},
	{ID: "6", Name: "Cappuccino", Milliliters: 150, Icon: "coffee", Color: "#8B4513", Category: CategoryCoffee},
	{ID: "7", Name: "Latte", Milliliters: 240, Icon: "coffee", Color: "#8B4513", Category: CategoryCoffee},
	{ID: "8", Name: "Cold Brew", Milliliters: 350, Icon: "ac-unit", Color: "#8B4513", Category: CategoryCoffee},

	// Tea
	{ID: "9", Name: "Green Tea", Milliliters: 200, Icon: "local-cafe", Color: "#8AC926", Category: CategoryTea},
	{ID: "10", Name: "Black Tea", Milliliters: 200, Icon: "local-cafe", Color: "#654321", Category: CategoryTea},
	{ID: "11", Name: "Herbal Tea", Milliliters: 200, Icon: "local-cafe", Color: "#9ACD32", Category: CategoryTea},
	{ID: "12", Name: "Iced Tea", Milliliters: 300, Icon: "ac-unit", Color: "#8AC926", Category: CategoryTea},

	// Juice
	{ID: "13", Name: "Orange Juice", Milliliters: 200, Icon: "local-drink", Color: "#FF8500", Category: CategoryJuice},
	{ID: "14", Name: "Apple Juice", Milliliters: 200, Icon: "local-drink", Color: "#FFFF00", Category: CategoryJuice},
	{ID: "15", Name: "Grape Juice", Milliliters: 200, Icon: "local-drink", Color: "#800080", Category: CategoryJuice},
	{ID: "16", Name: "Cranberry Juice", Milliliters: 200, Icon: "local-drink", Color: "#DC143C", Category: CategoryJuice},
	{ID: "17", Name: "Pineapple Juice", Milliliters: 200, Icon: "local-drink", Color: "#FFD700", Category: CategoryJuice},
	{ID: "18", Name: "Tomato Juice", Milliliters: 200, Icon: "local-drink", Color: "#FF6347", Category: CategoryJuice},

	// Soft drinks
	{ID: "19", Name: "Cola", Milliliters: 330, Icon: "local-bar", Color: "#8B4513", Category: CategorySoftDrink},
	{ID: "20", Name: "Lemon-Lime Soda", Milliliters: 330, Icon: "local-bar", Color: "#32CD32", Category: CategorySoftDrink},
	{ID: "21", Name: "Energy Drink", Milliliters: 250, Icon: "flash-on", Color: "#FFD60A", Category: CategorySoftDrink},

	// Sports drinks
	{ID: "22", Name: "Sports Drink", Milliliters: 500, Icon: "fitness-center", Color: "#00CED1", Category: CategorySports},
	{ID: "23", Name: "Electrolyte Water", Milliliters: 500, Icon: "fitness-center", Color: "#00D4FF", Category: CategorySports},

	// Milk
	{ID: "24", Name: "Dairy Milk", Milliliters: 250, Icon: "local-cafe", Color: "#F5F5DC", Category: CategoryMilk},
	{ID: "25", Name: "Almond Milk", Milliliters: 250, Icon: "local-cafe", Color: "#DDBEA9", Category: CategoryMilk},
	{ID: "26", Name: "Soy Milk", Milliliters: 250, Icon: "local-cafe", Color: "#F5DEB3", Category: CategoryMilk},
	{ID: "27", Name: "Oat Milk", Milliliters: 250, Icon: "local-cafe", Color: "#F4A460", Category: CategoryMilk},

	// Other
	{ID: "28", Name: "Smoothie", Milliliters: 400, Icon: "blender", Color: "#7B2CBF", Category: CategoryOther},
	{ID: "29", Name: "Coconut Water", Milliliters: 330, Icon: "local-drink", Color: "#F5F5DC", Category: CategoryOther},
	{ID: "30", Name: "Kombucha", Milliliters: 250, Icon: "local-drink", Color: "#8FBC8F", Category: CategoryOther},
}

// DrinkTypeByID looks up a catalog drink by id.
func DrinkTypeByID(id string) (DrinkType, bool) {
	for _, d := range DrinkCatalog {
		if d.ID == id {
			return d, true
		}
	}
	return DrinkType{}, false
}

// DrinkTypesByCategory returns all catalog drinks in the given category.
func DrinkTypesByCategory(category DrinkCategory) []DrinkType {
	var out []DrinkType
	for _, d := range DrinkCatalog {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}
