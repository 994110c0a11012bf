package converter

// ProductModel — строка таблицы products.
type ProductModel struct {
	ID          string
	Name        string
	Description string
	Price       int64
	Image       string
	Category    string
	Subcategory *string
	ItemType    *string
	Rating      float64
	Reviews     int
	Position    int
}

// CategoryModel — строка таблицы categories.
type CategoryModel struct {
	ID       string
	Name     string
	Position int
}

// SubcategoryModel — строка таблицы subcategories; Items — типы товаров.
type SubcategoryModel struct {
	CategoryID string
	Name       string
	Items      []string
	Position   int
}
