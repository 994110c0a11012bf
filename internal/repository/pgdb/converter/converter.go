package converter

import "github.com/msr-works/storefront-backend/internal/domain"

// ProductConverter переводит строки каталога в доменные сущности.
type ProductConverter interface {
	ToEntity(model *ProductModel) domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

// CategoryConverter собирает таксономию из строк категорий и подкатегорий.
type CategoryConverter interface {
	ToEntity(model *CategoryModel, subs []SubcategoryModel) domain.Category
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) domain.Product {
	p := domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Image:       model.Image,
		Category:    model.Category,
		Rating:      model.Rating,
		Reviews:     model.Reviews,
	}
	if model.Subcategory != nil {
		p.Subcategory = *model.Subcategory
	}
	if model.ItemType != nil {
		p.ItemType = *model.ItemType
	}
	return p
}

func (c *ProductConverterImpl) ToArrEntity(models []ProductModel) []domain.Product {
	result := make([]domain.Product, 0, len(models))
	for i := range models {
		result = append(result, c.ToEntity(&models[i]))
	}
	return result
}

type CategoryConverterImpl struct{}

func NewCategoryConverterImpl() *CategoryConverterImpl {
	return &CategoryConverterImpl{}
}

func (c *CategoryConverterImpl) ToEntity(model *CategoryModel, subs []SubcategoryModel) domain.Category {
	subcategories := make([]domain.Subcategory, 0, len(subs))
	for _, sub := range subs {
		subcategories = append(subcategories, domain.Subcategory{
			Name:  sub.Name,
			Items: sub.Items,
		})
	}
	return domain.NewCategory(model.ID, model.Name, subcategories)
}
