package entity

type Product struct {
	BaseSimple
	Name        string  `db:"name"`
	Price       float64 `db:"price"`
	Category    string  `db:"category"`
	Digital     bool    `db:"digital"`
	Image       *string `db:"image"`
	Description *string `db:"description"`
}
