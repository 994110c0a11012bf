package domain

// AllCategories — сентинельное значение выбора категории: сбрасывает фильтр по категориям.
const AllCategories = "All"

// Category описывает верхний уровень таксономии каталога.
type Category struct {
	ID            string
	Name          string
	Subcategories []Subcategory
}

// Subcategory — средний уровень таксономии: группа типов товаров внутри категории.
type Subcategory struct {
	Name  string
	Items []string // Типы товаров (нижний уровень таксономии)
}

func NewCategory(id string, name string, subcategories []Subcategory) Category {
	return Category{
		ID:            id,
		Name:          name,
		Subcategories: subcategories,
	}
}
