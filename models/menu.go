package models

// Category -> empat kategori tetap pada menu LezzetKare
type Category string

const (
	CategoryKebab   Category = "Kebaplar"
	CategoryBurger  Category = "Burgerler"
	CategoryDrink   Category = "İçecekler"
	CategoryDessert Category = "Tatlılar"
)

// Categories dalam urutan tampilan
var Categories = []Category{CategoryKebab, CategoryBurger, CategoryDrink, CategoryDessert}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MenuItem adalah record menu yang disimpan di key "menu".
// Price dalam lira utuh (tanpa minor unit), Cost = harga pokok per unit.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Cost        float64  `json:"cost"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
}
