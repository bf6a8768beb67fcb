package catalog

import "github.com/rinisriranganathan/RestBot/internal/money"

// DefaultEntries is the built-in fallback menu, used whenever no parsed
// catalog exists or the active upload is unreadable.
func DefaultEntries() []Entry {
	return []Entry{
		{ID: "1", Name: "Paneer Butter Masala", Description: "Soft paneer cubes cooked in a rich tomato-butter gravy", Category: CategoryMainCourse, TasteProfiles: []string{"Spicy", "Rich", "Buttery"}, Price: money.MustParse("₹180.00")},
		{ID: "2", Name: "Chicken Biryani", Description: "Fragrant basmati rice layered with spiced chicken", Category: CategoryMainCourse, TasteProfiles: []string{"Spicy", "Fragrant", "Savory"}, Price: money.MustParse("₹220.00")},
		{ID: "3", Name: "Masala Dosa", Description: "Crispy rice crepe filled with spicy mashed potatoes", Category: CategoryMainCourse, TasteProfiles: []string{"Crispy", "Spicy", "Tangy"}, Price: money.MustParse("₹90.00"), Pieces: 1},
		{ID: "4", Name: "Gulab Jamun", Description: "Deep-fried milk solids soaked in rose-flavored sugar syrup", Category: CategoryDessert, TasteProfiles: []string{"Sweet", "Juicy", "Rich"}, Price: money.MustParse("₹60.00"), Pieces: 2},
		{ID: "5", Name: "Mango Lassi", Description: "Sweet mango yogurt smoothie served chilled", Category: CategoryDrink, TasteProfiles: []string{"Sweet", "Creamy", "Fruity"}, Price: money.MustParse("₹70.00")},
		{ID: "6", Name: "Tandoori Chicken", Description: "Char-grilled chicken marinated in yogurt and spices", Category: CategoryMainCourse, TasteProfiles: []string{"Smoky", "Spicy", "Tangy"}, Price: money.MustParse("₹200.00"), Pieces: 4},
		{ID: "7", Name: "Samosa", Description: "Crispy pastry filled with spicy potatoes and peas", Category: CategoryAppetizer, TasteProfiles: []string{"Spicy", "Crispy", "Earthy"}, Price: money.MustParse("₹15.00"), Pieces: 1},
		{ID: "8", Name: "Butter Naan", Description: "Soft leavened bread brushed with butter", Category: CategoryMainCourse, TasteProfiles: []string{"Buttery", "Soft", "Mild"}, Price: money.MustParse("₹30.00"), Pieces: 1},
		{ID: "9", Name: "Rajma Chawal", Description: "Kidney beans curry served with steamed rice", Category: CategoryMainCourse, TasteProfiles: []string{"Spicy", "Earthy", "Comforting"}, Price: money.MustParse("₹120.00")},
		{ID: "10", Name: "Aloo Tikki", Description: "Spiced potato patties, crispy and golden brown", Category: CategoryAppetizer, TasteProfiles: []string{"Spicy", "Crispy", "Savory"}, Price: money.MustParse("₹40.00"), Pieces: 2},
		{ID: "11", Name: "Pani Puri", Description: "Crispy puris filled with spicy and tangy flavored water", Category: CategoryAppetizer, TasteProfiles: []string{"Tangy", "Spicy", "Crunchy"}, Price: money.MustParse("₹50.00"), Pieces: 6},
		{ID: "12", Name: "Palak Paneer", Description: "Cottage cheese cooked in a spinach gravy", Category: CategoryMainCourse, TasteProfiles: []string{"Mild", "Creamy", "Earthy"}, Price: money.MustParse("₹160.00")},
		{ID: "13", Name: "Chole Bhature", Description: "Spicy chickpeas served with deep-fried bread", Category: CategoryMainCourse, TasteProfiles: []string{"Spicy", "Fluffy", "Savory"}, Price: money.MustParse("₹100.00"), Pieces: 2},
		{ID: "14", Name: "Veg Pulao", Description: "Fragrant basmati rice with mixed vegetables and spices", Category: CategoryMainCourse, TasteProfiles: []string{"Fragrant", "Mild", "Savory"}, Price: money.MustParse("₹110.00")},
		{ID: "15", Name: "Rasgulla", Description: "Soft and spongy white cheese balls in sugar syrup", Category: CategoryDessert, TasteProfiles: []string{"Sweet", "Juicy", "Light"}, Price: money.MustParse("₹50.00"), Pieces: 2},
		{ID: "16", Name: "Jeera Rice", Description: "Steamed basmati rice flavored with cumin", Category: CategoryMainCourse, TasteProfiles: []string{"Fragrant", "Mild", "Toasty"}, Price: money.MustParse("₹70.00")},
		{ID: "17", Name: "Bhindi Masala", Description: "Okra stir-fried with spices", Category: CategoryMainCourse, TasteProfiles: []string{"Savory", "Spicy", "Earthy"}, Price: money.MustParse("₹140.00")},
		{ID: "18", Name: "Chai", Description: "Indian spiced tea made with milk and sugar", Category: CategoryDrink, TasteProfiles: []string{"Spiced", "Sweet", "Creamy"}, Price: money.MustParse("₹20.00")},
		{ID: "19", Name: "Rava Idli", Description: "Steamed semolina cakes served with chutney", Category: CategoryMainCourse, TasteProfiles: []string{"Mild", "Spongy", "Nutty"}, Price: money.MustParse("₹60.00"), Pieces: 3},
		{ID: "20", Name: "Mysore Pak", Description: "Traditional sweet made with gram flour and ghee", Category: CategoryDessert, TasteProfiles: []string{"Sweet", "Crumbly", "Rich"}, Price: money.MustParse("₹70.00"), Pieces: 2},
		{ID: "21", Name: "Veg Momos", Description: "Steamed dumplings stuffed with vegetables", Category: CategoryAppetizer, TasteProfiles: []string{"Spicy", "Juicy", "Savory"}, Price: money.MustParse("₹80.00"), Pieces: 6},
		{ID: "22", Name: "Fruit Chaat", Description: "Mixed fruits seasoned with spices", Category: CategoryAppetizer, TasteProfiles: []string{"Tangy", "Sweet", "Refreshing"}, Price: money.MustParse("₹60.00")},
		{ID: "23", Name: "Kadhai Paneer", Description: "Paneer cooked in a spicy tomato and bell pepper gravy", Category: CategoryMainCourse, TasteProfiles: []string{"Spicy", "Zesty", "Rich"}, Price: money.MustParse("₹170.00")},
		{ID: "24", Name: "Sweet Lassi", Description: "Traditional sweetened yogurt drink", Category: CategoryDrink, TasteProfiles: []string{"Sweet", "Creamy", "Refreshing"}, Price: money.MustParse("₹50.00")},
		{ID: "25", Name: "Papdi Chaat", Description: "Crispy papdi with yogurt, chutneys, and spices", Category: CategoryAppetizer, TasteProfiles: []string{"Tangy", "Spicy", "Crunchy"}, Price: money.MustParse("₹65.00")},
	}
}
