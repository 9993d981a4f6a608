package models

// DefaultMenu -> menu awal yang ditulis ke store saat key "menu" kosong
var DefaultMenu = []MenuItem{
	{
		ID:          "1",
		Name:        "Adana Kebap",
		Description: "Zırh kıyma, özel baharatlar, közlenmiş domates ve biber ile.",
		Price:       320,
		Cost:        140,
		Category:    CategoryKebab,
		Image:       "https://images.unsplash.com/photo-1644704170910-a0cdf183649b?auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:          "2",
		Name:        "Urfa Kebap",
		Description: "Acısız zırh kıyma, yanında pilav ve salata.",
		Price:       310,
		Cost:        135,
		Category:    CategoryKebab,
		Image:       "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:          "3",
		Name:        "Cheeseburger",
		Description: "180gr dana eti, cheddar peyniri, karamelize soğan.",
		Price:       280,
		Cost:        110,
		Category:    CategoryBurger,
		Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:          "4",
		Name:        "Yayık Ayran",
		Description: "Bol köpüklü, taze taze.",
		Price:       45,
		Cost:        12,
		Category:    CategoryDrink,
		Image:       "https://images.unsplash.com/photo-1626432204561-39656a84c810?auto=format&fit=crop&w=400&q=80",
	},
}
