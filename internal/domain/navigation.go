package domain

import "github.com/msr-works/storefront-backend/pkg/e"

// View — экран витрины.
type View string

const (
	ViewHome          View = "home"
	ViewAbout         View = "about"
	ViewProducts      View = "products"
	ViewContact       View = "contact"
	ViewProductDetail View = "productDetail"
	ViewCart          View = "cart"
	ViewCategory      View = "category"
	ViewPayment       View = "payment"
)

// ParseView разбирает имя экрана.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewHome, ViewAbout, ViewProducts, ViewContact,
		ViewProductDetail, ViewCart, ViewCategory, ViewPayment:
		return View(s), nil
	default:
		return "", e.ErrUnknownView
	}
}

// NavigationState — конечный автомат экранов одной сессии.
// Начальный экран — home. Переходы между экранами выполняются только
// именованными методами; нелегальные переходы возвращают e.ErrInvalidTransition.
//
// Инвариант: SelectedProduct не nil только когда текущий или непосредственно
// предыдущий экран — productDetail. Войти в productDetail без товара нельзя
// по построению: единственный вход — SelectProduct.
type NavigationState struct {
	CurrentView      View
	PreviousView     View
	SelectedProduct  *Product
	SelectedCategory string
}

func NewNavigationState() *NavigationState {
	return &NavigationState{
		CurrentView:  ViewHome,
		PreviousView: ViewHome,
	}
}

// SelectProduct открывает карточку товара. Доступно с любого экрана.
func (n *NavigationState) SelectProduct(p Product) {
	n.SelectedProduct = &p
	n.setView(ViewProductDetail)
}

// SelectCategory открывает список товаров с выбранной категорией.
// Засев фильтра категории выполняет вызывающая сторона (сентинель AllCategories
// означает сброс фильтра).
func (n *NavigationState) SelectCategory(category string) {
	n.SelectedCategory = category
	n.setView(ViewProducts)
}

// OpenCart открывает корзину. Доступно с любого экрана.
func (n *NavigationState) OpenCart() {
	n.setView(ViewCart)
}

// Checkout переходит к оплате. Легально только из корзины и карточки товара.
func (n *NavigationState) Checkout() error {
	if n.CurrentView != ViewCart && n.CurrentView != ViewProductDetail {
		return e.ErrInvalidTransition
	}
	n.setView(ViewPayment)
	return nil
}

// Back выполняет переход «назад» по фиксированным ребрам автомата.
// С экрана home перехода назад нет, вызов игнорируется.
func (n *NavigationState) Back() {
	switch n.CurrentView {
	case ViewProductDetail, ViewCart, ViewCategory:
		n.setView(ViewProducts)
	case ViewPayment:
		n.setView(ViewCart)
	case ViewProducts, ViewAbout, ViewContact:
		n.setView(ViewHome)
	case ViewHome:
		// некуда
	}
}

// NavigateTo — прямой переход по пунктам навбара.
// productDetail недостижим без товара, payment — без checkout-перехода.
func (n *NavigationState) NavigateTo(v View) error {
	switch v {
	case ViewHome, ViewAbout, ViewProducts, ViewContact:
		n.setView(v)
		return nil
	case ViewCart:
		n.OpenCart()
		return nil
	case ViewCategory:
		if n.SelectedCategory == "" {
			return e.ErrInvalidTransition
		}
		n.setView(ViewCategory)
		return nil
	case ViewProductDetail:
		return e.ErrProductRequired
	case ViewPayment:
		return e.ErrInvalidTransition
	default:
		return e.ErrUnknownView
	}
}

// CompleteOrder завершает успешную оплату переходом на home.
// Очистку корзины выполняет вызывающая сторона до перехода.
func (n *NavigationState) CompleteOrder() error {
	if n.CurrentView != ViewPayment {
		return e.ErrInvalidTransition
	}
	n.setView(ViewHome)
	return nil
}

func (n *NavigationState) setView(v View) {
	n.PreviousView = n.CurrentView
	n.CurrentView = v

	// Выбранный товар живет, пока карточка — текущий или предыдущий экран.
	if n.CurrentView != ViewProductDetail && n.PreviousView != ViewProductDetail {
		n.SelectedProduct = nil
	}
}
