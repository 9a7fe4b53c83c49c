// Package http exposes the engine over a REST API. Handlers translate
// JSON requests into commands and queries and map domain errors to
// status codes; no business rules live here.
package http

import (
	"net/http"

	"couriernet/internal/core/application/usecases/commands"
	"couriernet/internal/core/application/usecases/queries"
	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// Server routes HTTP requests to the application's command and query
// handlers.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	assignDriverHandler    commands.AssignDriverCommandHandler
	acceptPickupHandler    commands.AcceptPickupCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	reportProblemHandler   commands.ReportProblemCommandHandler
	overrideStatusHandler  commands.OverrideStatusCommandHandler
	createDriverHandler    commands.CreateDriverCommandHandler
	hideOrderHandler       commands.HideOrderCommandHandler
	purgeHistoryHandler    commands.PurgeHistoryCommandHandler

	// Query handlers
	availableCoursesHandler queries.GetAvailableCoursesQueryHandler
	userOrdersHandler       queries.GetUserOrdersQueryHandler
	carrierOrdersHandler    queries.GetCarrierOrdersQueryHandler
	orderHistoryHandler     queries.GetOrderHistoryQueryHandler
	carrierStatsHandler     queries.GetCarrierStatsQueryHandler
	carrierDriversHandler   queries.GetCarrierDriversQueryHandler
	trackShipmentHandler    queries.TrackShipmentQueryHandler
}

// NewServer creates an HTTP server wired to the given handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	acceptPickupHandler commands.AcceptPickupCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	reportProblemHandler commands.ReportProblemCommandHandler,
	overrideStatusHandler commands.OverrideStatusCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	hideOrderHandler commands.HideOrderCommandHandler,
	purgeHistoryHandler commands.PurgeHistoryCommandHandler,
	availableCoursesHandler queries.GetAvailableCoursesQueryHandler,
	userOrdersHandler queries.GetUserOrdersQueryHandler,
	carrierOrdersHandler queries.GetCarrierOrdersQueryHandler,
	orderHistoryHandler queries.GetOrderHistoryQueryHandler,
	carrierStatsHandler queries.GetCarrierStatsQueryHandler,
	carrierDriversHandler queries.GetCarrierDriversQueryHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		assignDriverHandler:     assignDriverHandler,
		acceptPickupHandler:     acceptPickupHandler,
		confirmDeliveryHandler:  confirmDeliveryHandler,
		reportProblemHandler:    reportProblemHandler,
		overrideStatusHandler:   overrideStatusHandler,
		createDriverHandler:     createDriverHandler,
		hideOrderHandler:        hideOrderHandler,
		purgeHistoryHandler:     purgeHistoryHandler,
		availableCoursesHandler: availableCoursesHandler,
		userOrdersHandler:       userOrdersHandler,
		carrierOrdersHandler:    carrierOrdersHandler,
		orderHistoryHandler:     orderHistoryHandler,
		carrierStatsHandler:     carrierStatsHandler,
		carrierDriversHandler:   carrierDriversHandler,
		trackShipmentHandler:    trackShipmentHandler,
	}
}

// RegisterRoutes binds every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/courses", s.GetAvailableCourses)

	api.POST("/orders", s.CreateOrder)
	api.DELETE("/orders/:orderId", s.HideOrder)
	api.POST("/orders/:orderId/driver", s.AssignDriver)
	api.POST("/orders/:orderId/problems", s.ReportProblem)
	api.PUT("/orders/:orderId/status", s.OverrideStatus)
	api.GET("/orders/:orderId/history", s.GetOrderHistory)
	api.DELETE("/orders/:orderId/history", s.PurgeOrderHistory)

	api.POST("/pickups", s.AcceptPickup)
	api.POST("/deliveries", s.ConfirmDelivery)

	api.POST("/drivers", s.CreateDriver)

	api.GET("/users/:userId/orders", s.GetUserOrders)
	api.GET("/carriers/:carrierId/orders", s.GetCarrierOrders)
	api.GET("/carriers/:carrierId/stats", s.GetCarrierStats)
	api.GET("/carriers/:carrierId/drivers", s.GetCarrierDrivers)

	api.GET("/tracking/:orderCode", s.TrackShipment)
}

// GetAvailableCourses handles GET /api/v1/courses.
func (s *Server) GetAvailableCourses(ctx echo.Context) error {
	size, err := shipment.ParseSize(ctx.QueryParam("size"))
	if err != nil {
		return writeError(ctx, err)
	}
	deliverToday := ctx.QueryParam("deliverToday") == "true"

	query, err := queries.NewGetAvailableCoursesQuery(
		ctx.QueryParam("startStop"),
		ctx.QueryParam("endStop"),
		size,
		deliverToday,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	courses, err := s.availableCoursesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CourseResponse, len(courses))
	for i, course := range courses {
		response[i] = courseToResponse(course)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return writeBadRequest(ctx, "invalid customerId")
	}
	relationID, err := kernel.UUIDFromString(req.RelationID)
	if err != nil {
		return writeBadRequest(ctx, "invalid relationId")
	}
	size, err := shipment.ParseSize(req.Size)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID,
		relationID,
		size,
		req.StartStop,
		req.EndStop,
		req.Price,
		req.DeliverToday,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// AssignDriver handles POST /api/v1/orders/:orderId/driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return writeBadRequest(ctx, "invalid driverId")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	assigned, err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(assigned))
}

// AcceptPickup handles POST /api/v1/pickups.
func (s *Server) AcceptPickup(ctx echo.Context) error {
	var req VerifyCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAcceptPickupCommand(req.OrderCode, req.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := s.acceptPickupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{
		OrderCode: req.OrderCode,
		Status:    status.String(),
	})
}

// ConfirmDelivery handles POST /api/v1/deliveries.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	var req VerifyCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(req.OrderCode, req.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{
		OrderCode: req.OrderCode,
		Status:    status.String(),
	})
}

// ReportProblem handles POST /api/v1/orders/:orderId/problems.
func (s *Server) ReportProblem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var req ReportProblemRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return writeBadRequest(ctx, "invalid customerId")
	}

	cmd, err := commands.NewReportProblemCommand(orderID, customerID, req.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	problem, err := s.reportProblemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, problemToResponse(problem))
}

// OverrideStatus handles PUT /api/v1/orders/:orderId/status.
func (s *Server) OverrideStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var req OverrideStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	status, err := shipment.ParseStatus(req.Status)
	if err != nil {
		return writeBadRequest(ctx, "unknown status")
	}

	cmd, err := commands.NewOverrideStatusCommand(orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	overridden, err := s.overrideStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(overridden))
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return writeBadRequest(ctx, "invalid ownerId")
	}

	cmd, err := commands.NewCreateDriverCommand(ownerID, req.FirstName, req.LastName)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, driverToResponse(created))
}

// HideOrder handles DELETE /api/v1/orders/:orderId. The party query
// parameter selects whose view the order disappears from.
func (s *Server) HideOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var party commands.HistoryParty
	switch ctx.QueryParam("party") {
	case "user":
		party = commands.HistoryPartyUser
	case "carrier":
		party = commands.HistoryPartyCarrier
	default:
		return writeBadRequest(ctx, "party must be \"user\" or \"carrier\"")
	}

	cmd, err := commands.NewHideOrderCommand(orderID, party)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.hideOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderHistory handles GET /api/v1/orders/:orderId/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.orderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = HistoryEntryResponse{
			Status:    entry.Status,
			ChangedAt: entry.ChangedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// PurgeOrderHistory handles DELETE /api/v1/orders/:orderId/history.
func (s *Server) PurgeOrderHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewPurgeHistoryCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.purgeHistoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUserOrders handles GET /api/v1/users/:userId/orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid user id")
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.userOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = summaryToResponse(summary)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCarrierOrders handles GET /api/v1/carriers/:carrierId/orders.
func (s *Server) GetCarrierOrders(ctx echo.Context) error {
	carrierID, err := kernel.UUIDFromString(ctx.Param("carrierId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid carrier id")
	}

	query, err := queries.NewGetCarrierOrdersQuery(carrierID)
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.carrierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = summaryToResponse(summary)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCarrierStats handles GET /api/v1/carriers/:carrierId/stats.
func (s *Server) GetCarrierStats(ctx echo.Context) error {
	carrierID, err := kernel.UUIDFromString(ctx.Param("carrierId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid carrier id")
	}

	query, err := queries.NewGetCarrierStatsQuery(carrierID)
	if err != nil {
		return writeError(ctx, err)
	}

	stats, err := s.carrierStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CarrierStatsResponse{
		TotalOrders:      stats.TotalOrders,
		ActiveOrders:     stats.ActiveOrders,
		DeliveredOrders:  stats.DeliveredOrders,
		Interventions:    stats.Interventions,
		TotalEarnings:    stats.TotalEarnings,
		EarningsComputed: stats.EarningsComputed,
	})
}

// GetCarrierDrivers handles GET /api/v1/carriers/:carrierId/drivers.
func (s *Server) GetCarrierDrivers(ctx echo.Context) error {
	carrierID, err := kernel.UUIDFromString(ctx.Param("carrierId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid carrier id")
	}

	query, err := queries.NewGetCarrierDriversQuery(carrierID)
	if err != nil {
		return writeError(ctx, err)
	}

	drivers, err := s.carrierDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		response[i] = DriverResponse{
			ID:        d.ID.String(),
			OwnerID:   carrierID.String(),
			FirstName: d.FirstName,
			LastName:  d.LastName,
			IDCode:    d.IDCode,
			PinCode:   d.PinCode,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// TrackShipment handles GET /api/v1/tracking/:orderCode. The endpoint
// is anonymous; it exposes only the snapshot fields.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewTrackShipmentQuery(ctx.Param("orderCode"))
	if err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshotToResponse(snapshot))
}
