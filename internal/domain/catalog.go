package domain

// Catalog — неизменяемый набор товаров и таксономия категорий.
// Порядок products задает «featured»-порядок выдачи.
type Catalog struct {
	products []Product
	byID     map[string]Product
	taxonomy []Category
}

// NewCatalog создает каталог из списка товаров и таксономии.
// Слайсы копируются: после создания каталог не зависит от вызывающей стороны.
func NewCatalog(products []Product, taxonomy []Category) *Catalog {
	ps := make([]Product, len(products))
	copy(ps, products)

	byID := make(map[string]Product, len(ps))
	for _, p := range ps {
		byID[p.ID] = p
	}

	tax := make([]Category, len(taxonomy))
	copy(tax, taxonomy)

	return &Catalog{
		products: ps,
		byID:     byID,
		taxonomy: tax,
	}
}

// Products возвращает копию списка товаров в каталожном порядке.
func (c *Catalog) Products() []Product {
	ps := make([]Product, len(c.products))
	copy(ps, c.products)
	return ps
}

// Product возвращает товар по идентификатору.
func (c *Catalog) Product(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Taxonomy возвращает дерево категорий.
func (c *Catalog) Taxonomy() []Category {
	return c.taxonomy
}

// Len возвращает число товаров в каталоге.
func (c *Catalog) Len() int {
	return len(c.products)
}
