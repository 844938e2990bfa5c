// Package http exposes the order lifecycle over a small JSON API.
// It is presentation glue only: every request is translated into a command or
// query and handed to the application layer, every domain error into a status
// code.
package http

import (
	"errors"
	"net/http"
	"strings"

	"universestore/internal/core/application/usecases/commands"
	"universestore/internal/core/application/usecases/queries"
	"universestore/internal/core/domain/model/catalog"
	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/model/order"
	"universestore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// customOrderPrice is the price label applied when a custom desire is ordered
// without an explicit price.
const customOrderPrice = "unshakable faith"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler             commands.PlaceOrderCommandHandler
	notifyDeliveryCompleteHandler commands.NotifyDeliveryCompleteCommandHandler

	// Query handlers
	listOrdersHandler       queries.ListOrdersQueryHandler
	getOrderProgressHandler queries.GetOrderProgressQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	notifyDeliveryCompleteHandler commands.NotifyDeliveryCompleteCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderProgressHandler queries.GetOrderProgressQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:             placeOrderHandler,
		notifyDeliveryCompleteHandler: notifyDeliveryCompleteHandler,
		listOrdersHandler:             listOrdersHandler,
		getOrderProgressHandler:       getOrderProgressHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/products", s.GetProducts)
	e.POST("/api/v1/orders", s.PlaceOrder)
	e.GET("/api/v1/orders", s.GetOrders)
	e.GET("/api/v1/orders/:orderNumber/progress", s.GetOrderProgress)
	e.POST("/api/v1/orders/:orderNumber/delivered", s.NotifyDelivered)
}

// Error is the uniform error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Product is one catalog entry as presented on the order form.
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Emoji       string `json:"emoji"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	Item            string `json:"item"`
	Address         string `json:"address"`
	DeliveryRequest string `json:"delivery_request"`
	MentalState     string `json:"mental_state"`
	Price           string `json:"price"`
}

// Order is one placed order as returned by the API.
type Order struct {
	OrderNumber     string `json:"order_num"`
	Item            string `json:"item"`
	Address         string `json:"address"`
	DeliveryRequest string `json:"delivery_request"`
	MentalState     string `json:"state"`
	Price           string `json:"price"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	Percent         int    `json:"percent,omitempty"`
	Stage           string `json:"stage,omitempty"`
}

// Progress is the live delivery progress of one order.
type Progress struct {
	OrderNumber      string `json:"order_num"`
	Item             string `json:"item"`
	Percent          int    `json:"percent"`
	Stage            string `json:"stage"`
	Delivered        bool   `json:"delivered"`
	RemainingHours   int    `json:"remaining_hours"`
	RemainingMinutes int    `json:"remaining_minutes"`
}

// dateLayout matches the stored timestamp format so API responses and the
// data file present the same instant identically.
const dateLayout = "2006-01-02 15:04:05"

// GetProducts handles GET /api/v1/products - returns the static catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	products := catalog.Products()

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Emoji:       p.Emoji,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	price := newOrder.Price
	if strings.TrimSpace(price) == "" {
		price = defaultPrice(newOrder.Item)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		newOrder.Item,
		newOrder.Address,
		newOrder.DeliveryRequest,
		order.MentalState(newOrder.MentalState),
		price,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.domainError(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, Order{
		OrderNumber:     placed.Number().String(),
		Item:            placed.Item(),
		Address:         placed.Address(),
		DeliveryRequest: placed.DeliveryRequest(),
		MentalState:     placed.MentalState().String(),
		Price:           placed.Price(),
		Date:            placed.CreatedAt().Format(dateLayout),
		Status:          placed.StatusLabel(),
	})
}

// GetOrders handles GET /api/v1/orders - lists all orders, most recent first,
// each with its live delivery progress.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewListOrdersQuery()

	entries, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]Order, len(entries))
	for i, entry := range entries {
		response[i] = Order{
			OrderNumber:     entry.OrderNumber.String(),
			Item:            entry.Item,
			Address:         entry.Address,
			DeliveryRequest: entry.DeliveryRequest,
			MentalState:     entry.MentalState.String(),
			Price:           entry.Price,
			Date:            entry.CreatedAt.Format(dateLayout),
			Status:          entry.StatusLabel,
			Percent:         entry.Percent,
			Stage:           entry.Stage.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderProgress handles GET /api/v1/orders/:orderNumber/progress.
func (s *Server) GetOrderProgress(ctx echo.Context) error {
	number, err := kernel.OrderNumberFromString(ctx.Param("orderNumber"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number",
		})
	}

	query, err := queries.NewGetOrderProgressQuery(number)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number: " + err.Error(),
		})
	}

	resp, err := s.getOrderProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err, "Failed to retrieve order progress")
	}

	return ctx.JSON(http.StatusOK, Progress{
		OrderNumber:      resp.OrderNumber.String(),
		Item:             resp.Item,
		Percent:          resp.Percent,
		Stage:            resp.Stage.String(),
		Delivered:        resp.Delivered,
		RemainingHours:   resp.RemainingHours,
		RemainingMinutes: resp.RemainingMinutes,
	})
}

// NotifyDelivered handles POST /api/v1/orders/:orderNumber/delivered -
// announces delivery completion for an order that has reached 100%.
func (s *Server) NotifyDelivered(ctx echo.Context) error {
	number, err := kernel.OrderNumberFromString(ctx.Param("orderNumber"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number",
		})
	}

	cmd, err := commands.NewNotifyDeliveryCompleteCommand(number)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number: " + err.Error(),
		})
	}

	if handleErr := s.notifyDeliveryCompleteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrOrderNotYetDelivered) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Order has not been delivered yet",
			})
		}
		return s.domainError(ctx, handleErr, "Failed to announce delivery")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// domainError maps application-layer errors onto response codes: validation
// failures are the caller's fault, unknown orders are 404, everything else
// (including storage trouble) is a 500 with a generic message.
func (s *Server) domainError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

// defaultPrice resolves the price label when the caller omits one: catalog
// items carry their listed price, a custom desire falls back to the standard
// currency of the store.
func defaultPrice(item string) string {
	product, err := catalog.FindProduct(item)
	if err != nil {
		return customOrderPrice
	}
	return product.Price
}
