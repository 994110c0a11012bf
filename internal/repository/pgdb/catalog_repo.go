package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/msr-works/storefront-backend/internal/domain"
	"github.com/msr-works/storefront-backend/internal/repository/pgdb/converter"
	"github.com/msr-works/storefront-backend/pkg/e"
)

// CatalogRepo реализует источник каталога поверх PostgreSQL.
// Каталог читается целиком при старте; порядок строк по position задает
// «featured»-порядок выдачи.
type CatalogRepo struct {
	pool    *pgxpool.Pool
	prConv  converter.ProductConverter
	catConv converter.CategoryConverter
}

func NewCatalogRepo(pool *pgxpool.Pool, prConv converter.ProductConverter, catConv converter.CategoryConverter) *CatalogRepo {
	return &CatalogRepo{
		pool:    pool,
		prConv:  prConv,
		catConv: catConv,
	}
}

// LoadProducts возвращает все товары каталога в каталожном порядке.
func (r *CatalogRepo) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, description, price, image, category, subcategory, item_type, rating, reviews, position
		FROM products
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var m converter.ProductModel
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Description, &m.Price, &m.Image,
			&m.Category, &m.Subcategory, &m.ItemType, &m.Rating, &m.Reviews, &m.Position,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.prConv.ToArrEntity(models), nil
}

// LoadTaxonomy возвращает дерево категорий: категория -> подкатегория -> типы товаров.
func (r *CatalogRepo) LoadTaxonomy(ctx context.Context) ([]domain.Category, error) {
	categories, err := r.loadCategories(ctx)
	if err != nil {
		return nil, err
	}

	subsByCategory, err := r.loadSubcategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Category, 0, len(categories))
	for i := range categories {
		result = append(result, r.catConv.ToEntity(&categories[i], subsByCategory[categories[i].ID]))
	}

	return result, nil
}

func (r *CatalogRepo) loadCategories(ctx context.Context) ([]converter.CategoryModel, error) {
	query := `
		SELECT id, name, position
		FROM categories
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.CategoryModel, 0)
	for rows.Next() {
		var m converter.CategoryModel
		if err := rows.Scan(&m.ID, &m.Name, &m.Position); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return models, nil
}

func (r *CatalogRepo) loadSubcategories(ctx context.Context) (map[string][]converter.SubcategoryModel, error) {
	query := `
		SELECT category_id, name, items, position
		FROM subcategories
		ORDER BY category_id, position
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make(map[string][]converter.SubcategoryModel)
	for rows.Next() {
		var m converter.SubcategoryModel
		if err := rows.Scan(&m.CategoryID, &m.Name, &m.Items, &m.Position); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result[m.CategoryID] = append(result[m.CategoryID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
