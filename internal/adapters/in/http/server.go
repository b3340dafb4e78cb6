// Package http exposes the application's use cases over a REST API built
// on the Echo framework. Handlers translate between JSON payloads and
// commands/queries; domain errors are mapped onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/core/application/usecases/queries"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/core/domain/model/product"
	"galapagos/internal/core/domain/model/route"
	"galapagos/internal/core/domain/services"
	"galapagos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the payload for creating an order.
type NewOrderRequest struct {
	ClientID string                `json:"clientId"`
	Items    []NewOrderItemRequest `json:"items"`
}

// NewOrderItemRequest is a single line item of an order creation request.
type NewOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderCreatedResponse returns the identifier assigned to a new order.
type OrderCreatedResponse struct {
	ID string `json:"id"`
}

// PlanDeliveryRequest is the payload for planning the delivery of an order.
type PlanDeliveryRequest struct {
	OrderID           string    `json:"orderId"`
	VehicleID         string    `json:"vehicleId"`
	OriginPortID      string    `json:"originPortId"`
	DestinationPortID string    `json:"destinationPortId"`
	EstimatedDate     time.Time `json:"estimatedDate"`
}

// ShipmentResponse describes a shipment record created by delivery planning.
type ShipmentResponse struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"orderId"`
	TripID        string    `json:"tripId"`
	LockerID      *string   `json:"lockerId,omitempty"`
	Status        string    `json:"status"`
	EstimatedDate time.Time `json:"estimatedDate"`
}

// VehicleResponse describes a seaplane and its derived operational status.
type VehicleResponse struct {
	ID              string  `json:"id"`
	Model           string  `json:"model"`
	CapacityKg      int     `json:"capacityKg"`
	ConsumptionRate float64 `json:"consumptionRate"`
	Status          string  `json:"status"`
	CurrentPortID   *string `json:"currentPortId,omitempty"`
}

// PortResponse describes a port of the island network.
type PortResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Island    string  `json:"island"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LockerResponse describes a storage locker and its availability.
type LockerResponse struct {
	ID        string `json:"id"`
	Available bool   `json:"available"`
}

// Server wires HTTP routes to the application's command and query handlers.
type Server struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	planDeliveryHandler commands.PlanDeliveryCommandHandler

	getShortestPathHandler queries.GetShortestPathQueryHandler
	listVehiclesHandler    queries.ListVehiclesQueryHandler
	getPortsHandler        queries.GetPortsQueryHandler
	getLockersHandler      queries.GetLockersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	planDeliveryHandler commands.PlanDeliveryCommandHandler,
	getShortestPathHandler queries.GetShortestPathQueryHandler,
	listVehiclesHandler queries.ListVehiclesQueryHandler,
	getPortsHandler queries.GetPortsQueryHandler,
	getLockersHandler queries.GetLockersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		planDeliveryHandler:    planDeliveryHandler,
		getShortestPathHandler: getShortestPathHandler,
		listVehiclesHandler:    listVehiclesHandler,
		getPortsHandler:        getPortsHandler,
		getLockersHandler:      getLockersHandler,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/deliveries", s.PlanDelivery)
	api.GET("/routes/shortest", s.GetShortestPath)
	api.GET("/vehicles", s.GetVehicles)
	api.GET("/ports", s.GetPorts)
	api.GET("/lockers", s.GetLockers)
}

// CreateOrder handles POST /api/v1/orders - registers a new client order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		productID, prodErr := kernel.UUIDFromString(itemReq.ProductID)
		if prodErr != nil {
			return badRequest(ctx, "Invalid product id: "+prodErr.Error())
		}

		item, itemErr := order.NewItem(productID, itemReq.Quantity)
		if itemErr != nil {
			return badRequest(ctx, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{ID: orderID.String()})
}

// PlanDelivery handles POST /api/v1/deliveries - plans the delivery of an
// order and returns the first created shipment; its siblings share the
// same trip.
func (s *Server) PlanDelivery(ctx echo.Context) error {
	var req PlanDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewPlanDeliveryCommand(
		orderID,
		req.VehicleID,
		req.OriginPortID,
		req.DestinationPortID,
		req.EstimatedDate,
	)
	if err != nil {
		return badRequest(ctx, "Invalid delivery request: "+err.Error())
	}

	created, err := s.planDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err, "Failed to plan delivery")
	}

	response := ShipmentResponse{
		ID:            created.ID().String(),
		OrderID:       created.OrderID().String(),
		TripID:        created.TripID().String(),
		Status:        created.Status().String(),
		EstimatedDate: created.EstimatedDate(),
	}
	if lockerID := created.LockerID(); lockerID != nil {
		id := lockerID.String()
		response.LockerID = &id
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetShortestPath handles GET /api/v1/routes/shortest - computes the
// shortest route between two ports.
func (s *Server) GetShortestPath(ctx echo.Context) error {
	query, err := queries.NewGetShortestPathQuery(
		ctx.QueryParam("origin"),
		ctx.QueryParam("destination"),
	)
	if err != nil {
		return badRequest(ctx, "Invalid route request: "+err.Error())
	}

	computed, err := s.getShortestPathHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to compute route")
	}

	return ctx.JSON(http.StatusOK, computed)
}

// GetVehicles handles GET /api/v1/vehicles - lists the fleet with derived
// statuses.
func (s *Server) GetVehicles(ctx echo.Context) error {
	statuses, err := s.listVehiclesHandler.Handle(ctx.Request().Context(), queries.NewListVehiclesQuery())
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve vehicles")
	}

	response := make([]VehicleResponse, len(statuses))
	for i, status := range statuses {
		response[i] = VehicleResponse{
			ID:              status.Vehicle.ID(),
			Model:           status.Vehicle.Model(),
			CapacityKg:      status.Vehicle.CapacityKg(),
			ConsumptionRate: status.Vehicle.ConsumptionRate(),
			Status:          string(status.Status),
			CurrentPortID:   status.CurrentPortID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPorts handles GET /api/v1/ports - lists all ports of the network.
func (s *Server) GetPorts(ctx echo.Context) error {
	ports, err := s.getPortsHandler.Handle(ctx.Request().Context(), queries.NewGetPortsQuery())
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve ports")
	}

	response := make([]PortResponse, len(ports))
	for i, p := range ports {
		response[i] = PortResponse{
			ID:        p.ID,
			Name:      p.Name,
			Island:    p.Island,
			Latitude:  p.Location.Latitude(),
			Longitude: p.Location.Longitude(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLockers handles GET /api/v1/lockers - lists all storage lockers with
// their availability.
func (s *Server) GetLockers(ctx echo.Context) error {
	lockers, err := s.getLockersHandler.Handle(ctx.Request().Context(), queries.NewGetLockersQuery())
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve lockers")
	}

	response := make([]LockerResponse, len(lockers))
	for i, locker := range lockers {
		response[i] = LockerResponse{
			ID:        locker.ID.String(),
			Available: locker.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application errors onto HTTP status codes: missing
// objects become 404, validation failures 400, resource shortages, status
// races and unroutable port pairs 409, storage outages 503, everything
// else 500.
func domainError(ctx echo.Context, err error, fallback string) error {
	var (
		noRoute           *route.NoRouteFoundError
		insufficientStock *product.InsufficientStockError
		noLockers         *services.InsufficientLockersError
		statusConflict    *order.StatusConflictError
	)

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.As(err, &noRoute),
		errors.As(err, &insufficientStock),
		errors.As(err, &noLockers),
		errors.As(err, &statusConflict):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrPersistenceFailed):
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Storage temporarily unavailable",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
