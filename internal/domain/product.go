package domain

// Product описывает товар каталога. Каталог неизменяем после загрузки,
// поэтому продукт передается по значению.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int64  // Цена хранится в целых рупиях
	Image       string // Ключ объекта в S3, разрешается в URL на уровне инфраструктуры
	Category    string
	Subcategory string // Пустая строка — не задана
	ItemType    string // Пустая строка — не задан
	Rating      float64
	Reviews     int
}

func NewProduct(id string, name string, price int64, category string) Product {
	return Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: category,
	}
}
