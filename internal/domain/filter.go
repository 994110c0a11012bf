package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey задает порядок выдачи товаров.
type SortKey string

const (
	SortFeatured  SortKey = "featured"   // Каталожный порядок, без пересортировки
	SortPriceLow  SortKey = "price-low"  // По возрастанию цены
	SortPriceHigh SortKey = "price-high" // По убыванию цены
	SortRating    SortKey = "rating"     // По убыванию рейтинга
	SortName      SortKey = "name"       // По названию, с учетом локали
)

// ParseSortKey разбирает ключ сортировки. Пустая строка и неизвестные
// значения трактуются как featured — так ведет себя исходная витрина.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh, SortRating, SortName:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// PriceRange — границы фильтра по цене по умолчанию.
const (
	DefaultPriceMin int64 = 0
	DefaultPriceMax int64 = 200000
)

// FilterState описывает активные фильтры витрины.
// Измерения комбинируются через AND, значения внутри измерения — через OR.
// Пустой набор значений означает отсутствие ограничения.
type FilterState struct {
	Categories    []string
	Subcategories []string
	Items         []string
	PriceMin      int64
	PriceMax      int64
	SearchQuery   string
}

// NewFilterState возвращает фильтр без ограничений с полным ценовым диапазоном.
func NewFilterState() FilterState {
	return FilterState{
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
	}
}

// Matches проверяет товар на соответствие всем активным фильтрам.
func (f FilterState) Matches(p Product) bool {
	return f.matchesSearch(p) &&
		matchesSet(f.Categories, p.Category, false) &&
		matchesSet(f.Subcategories, p.Subcategory, true) &&
		matchesSet(f.Items, p.ItemType, true) &&
		p.Price >= f.PriceMin && p.Price <= f.PriceMax
}

func (f FilterState) matchesSearch(p Product) bool {
	if f.SearchQuery == "" {
		return true
	}
	q := strings.ToLower(f.SearchQuery)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// matchesSet — тест членства для одного измерения фильтра.
// optional помечает измерения, где незаполненное поле товара не проходит активный фильтр.
func matchesSet(selected []string, value string, optional bool) bool {
	if len(selected) == 0 {
		return true
	}
	if optional && value == "" {
		return false
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// FilterProducts возвращает товары, проходящие фильтр, в каталожном порядке.
func FilterProducts(products []Product, f FilterState) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}

// SortProducts возвращает новый слайс, упорядоченный по ключу.
// Сортировка стабильна: при равных ключах сохраняется каталожный порядок.
func SortProducts(products []Product, key SortKey) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case SortName:
		coll := collate.New(language.English)
		sort.SliceStable(sorted, func(i, j int) bool {
			return coll.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	default:
		// featured: каталожный порядок как есть
	}

	return sorted
}

// ListProducts применяет фильтр и сортировку к каталогу.
// Результат вычисляется заново при каждом вызове и нигде не кэшируется.
func ListProducts(c *Catalog, f FilterState, key SortKey) []Product {
	return SortProducts(FilterProducts(c.products, f), key)
}
