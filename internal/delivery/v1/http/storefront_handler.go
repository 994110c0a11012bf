package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/msr-works/storefront-backend/internal/usecase"
	"github.com/msr-works/storefront-backend/pkg/logger"
)

type StorefrontHandler struct {
	storefrontUsecase usecase.StorefrontUC
	logger            logger.Logger
}

func NewStorefrontHandler(storefrontUsecase usecase.StorefrontUC, logger logger.Logger) *StorefrontHandler {
	return &StorefrontHandler{storefrontUsecase: storefrontUsecase, logger: logger}
}

type navigateBody struct {
	View      string `json:"view"`
	ProductID string `json:"product_id"`
	Category  string `json:"category"`
}

type setFiltersBody struct {
	Categories    *[]string `json:"categories"`
	Subcategories *[]string `json:"subcategories"`
	Items         *[]string `json:"items"`
	PriceMin      *int64    `json:"price_min"`
	PriceMax      *int64    `json:"price_max"`
	SearchQuery   *string   `json:"search_query"`
	Sort          *string   `json:"sort"`
}

type addToCartBody struct {
	ProductID string `json:"product_id"`
}

type updateCartLineBody struct {
	Quantity int `json:"quantity"`
}

type submitOrderBody struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	PaymentMethod string `json:"payment_method"`
}

// getSession
//
//	@Summary		Состояние сессии
//	@Description	Возвращает состояние сессии витрины. Без X-Session-ID создает новую сессию.
//	@Tags			session
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Success		200				{object}	usecase.SessionRes
//	@Failure		500				{object}	ErrorResponse
//	@Router			/session [get]
func (h *StorefrontHandler) getSession(w http.ResponseWriter, r *http.Request) {
	res, err := h.storefrontUsecase.GetSession(r.Context(), usecase.NewGetSessionReq(sessionID(r)))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.Header().Set(sessionHeader, res.SessionID)
	WriteSuccess(w, http.StatusOK, res)
}

// navigate
//
//	@Summary		Навигационный интент
//	@Description	Переключает экран сессии: view, карточка товара (product_id), категория (category), "back", "payment".
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string			false	"Идентификатор сессии"
//	@Param			request			body		navigateBody	true	"Интент"
//	@Success		200				{object}	usecase.SessionRes
//	@Failure		400				{object}	ErrorResponse	"Неизвестный экран или нет товара"
//	@Failure		409				{object}	ErrorResponse	"Недопустимый переход"
//	@Router			/session/navigate [post]
func (h *StorefrontHandler) navigate(w http.ResponseWriter, r *http.Request) {
	var body navigateBody
	if err := decodeJSON(r, &body); err != nil {
		h.logger.Warnf("%d navigate: malformed body", http.StatusBadRequest)
		WriteError(w, err)
		return
	}

	res, err := h.storefrontUsecase.Navigate(r.Context(),
		usecase.NewNavigateReq(sessionID(r), body.View, body.ProductID, body.Category))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.Header().Set(sessionHeader, res.SessionID)
	WriteSuccess(w, http.StatusOK, res)
}

// getListing
//
//	@Summary		Выдача каталога
//	@Description	Товары, отфильтрованные и отсортированные по состоянию сессии.
//	@Tags			catalog
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Success		200				{object}	usecase.GetListingRes
//	@Failure		500				{object}	ErrorResponse
//	@Router			/session/products [get]
func (h *StorefrontHandler) getListing(w http.ResponseWriter, r *http.Request) {
	res, err := h.storefrontUsecase.GetListing(r.Context(), &usecase.GetListingReq{SessionID: sessionID(r)})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// setFilters
//
//	@Summary		Изменение фильтров
//	@Description	Частичное обновление фильтров и сортировки; отсутствующее поле не меняется.
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string			false	"Идентификатор сессии"
//	@Param			request			body		setFiltersBody	true	"Изменяемые поля"
//	@Success		200				{object}	usecase.GetListingRes
//	@Failure		400				{object}	ErrorResponse
//	@Router			/session/filters [put]
func (h *StorefrontHandler) setFilters(w http.ResponseWriter, r *http.Request) {
	var body setFiltersBody
	if err := decodeJSON(r, &body); err != nil {
		h.logger.Warnf("%d setFilters: malformed body", http.StatusBadRequest)
		WriteError(w, err)
		return
	}

	res, err := h.storefrontUsecase.SetFilters(r.Context(), &usecase.SetFiltersReq{
		SessionID:     sessionID(r),
		Categories:    body.Categories,
		Subcategories: body.Subcategories,
		Items:         body.Items,
		PriceMin:      body.PriceMin,
		PriceMax:      body.PriceMax,
		SearchQuery:   body.SearchQuery,
		Sort:          body.Sort,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getProduct
//
//	@Summary		Карточка товара
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		string	true	"Идентификатор товара"
//	@Success		200	{object}	usecase.ProductView
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (h *StorefrontHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	res, err := h.storefrontUsecase.GetProduct(r.Context(), &usecase.GetProductReq{ID: chi.URLParam(r, "id")})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getTaxonomy
//
//	@Summary		Дерево категорий
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	usecase.GetTaxonomyRes
//	@Router			/categories [get]
func (h *StorefrontHandler) getTaxonomy(w http.ResponseWriter, r *http.Request) {
	res, err := h.storefrontUsecase.GetTaxonomy(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getCart
//
//	@Summary		Корзина
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Success		200				{object}	usecase.CartRes
//	@Router			/session/cart [get]
func (h *StorefrontHandler) getCart(w http.ResponseWriter, r *http.Request) {
	res, err := h.storefrontUsecase.GetCart(r.Context(), &usecase.GetCartReq{SessionID: sessionID(r)})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.Header().Set(sessionHeader, res.SessionID)
	WriteSuccess(w, http.StatusOK, res)
}

// addToCart
//
//	@Summary		Добавление товара в корзину
//	@Description	Повторное добавление того же товара увеличивает количество на 1.
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string			false	"Идентификатор сессии"
//	@Param			request			body		addToCartBody	true	"Товар"
//	@Success		200				{object}	usecase.CartRes
//	@Failure		404				{object}	ErrorResponse	"Товар не найден"
//	@Failure		409				{object}	ErrorResponse	"Оплата в процессе"
//	@Router			/session/cart/items [post]
func (h *StorefrontHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	var body addToCartBody
	if err := decodeJSON(r, &body); err != nil {
		h.logger.Warnf("%d addToCart: malformed body", http.StatusBadRequest)
		WriteError(w, err)
		return
	}

	res, err := h.storefrontUsecase.AddToCart(r.Context(), usecase.NewAddToCartReq(sessionID(r), body.ProductID))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.Header().Set(sessionHeader, res.SessionID)
	WriteSuccess(w, http.StatusOK, res)
}

// updateCartLine
//
//	@Summary		Изменение количества позиции
//	@Description	quantity 0 удаляет позицию, отрицательное значение отклоняется.
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string				false	"Идентификатор сессии"
//	@Param			id				path		string				true	"Идентификатор товара"
//	@Param			request			body		updateCartLineBody	true	"Количество"
//	@Success		200				{object}	usecase.CartRes
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse	"Позиции нет в корзине"
//	@Router			/session/cart/items/{id} [patch]
func (h *StorefrontHandler) updateCartLine(w http.ResponseWriter, r *http.Request) {
	var body updateCartLineBody
	if err := decodeJSON(r, &body); err != nil {
		h.logger.Warnf("%d updateCartLine: malformed body", http.StatusBadRequest)
		WriteError(w, err)
		return
	}

	res, err := h.storefrontUsecase.UpdateCartLine(r.Context(),
		usecase.NewUpdateCartLineReq(sessionID(r), chi.URLParam(r, "id"), body.Quantity))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.Header().Set(sessionHeader, res.SessionID)
	WriteSuccess(w, http.StatusOK, res)
}

// submitOrder
//
//	@Summary		Оформление заказа
//	@Description	Проверяет форму и регион доставки, запускает имитацию оплаты.
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string			false	"Идентификатор сессии"
//	@Param			request			body		submitOrderBody	true	"Форма оплаты"
//	@Success		202				{object}	usecase.CheckoutStateRes
//	@Failure		400				{object}	ErrorResponse	"Не заполнены обязательные поля"
//	@Failure		409				{object}	ErrorResponse	"Пустая корзина или оплата уже идет"
//	@Failure		422				{object}	ErrorResponse	"Регион не обслуживается"
//	@Router			/session/checkout [post]
func (h *StorefrontHandler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var body submitOrderBody
	if err := decodeJSON(r, &body); err != nil {
		h.logger.Warnf("%d submitOrder: malformed body", http.StatusBadRequest)
		WriteError(w, err)
		return
	}

	res, err := h.storefrontUsecase.SubmitOrder(r.Context(), &usecase.SubmitOrderReq{
		SessionID:     sessionID(r),
		FullName:      body.FullName,
		Email:         body.Email,
		Phone:         body.Phone,
		Address:       body.Address,
		City:          body.City,
		State:         body.State,
		ZipCode:       body.ZipCode,
		PaymentMethod: body.PaymentMethod,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusAccepted, res)
}

// getCheckoutState
//
//	@Summary		Стадия оплаты
//	@Description	Стадия имитации оплаты и итоги заказа; презентационный слой опрашивает до завершения.
//	@Tags			checkout
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Success		200				{object}	usecase.CheckoutStateRes
//	@Router			/session/checkout [get]
func (h *StorefrontHandler) getCheckoutState(w http.ResponseWriter, r *http.Request) {
	res, err := h.storefrontUsecase.GetCheckoutState(r.Context(), &usecase.GetCheckoutStateReq{SessionID: sessionID(r)})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}
