package http

import (
	"time"

	"couriernet/internal/core/application/usecases/queries"
	"couriernet/internal/core/domain/model/driver"
	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/core/ports"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. The price is
// the one quoted by the availability search; the booking fixes it.
type CreateOrderRequest struct {
	CustomerID   string  `json:"customerId"`
	RelationID   string  `json:"relationId"`
	Size         string  `json:"size"`
	StartStop    string  `json:"startStop"`
	EndStop      string  `json:"endStop"`
	Price        float64 `json:"price"`
	DeliverToday bool    `json:"deliverToday"`
}

// AssignDriverRequest is the body of POST /api/v1/orders/:orderId/driver.
type AssignDriverRequest struct {
	DriverID string `json:"driverId"`
}

// VerifyCodeRequest carries a driver's verification attempt for pickup
// or delivery.
type VerifyCodeRequest struct {
	OrderCode string `json:"orderCode"`
	Code      string `json:"code"`
}

// ReportProblemRequest is the body of POST /api/v1/orders/:orderId/problems.
type ReportProblemRequest struct {
	CustomerID  string `json:"customerId"`
	Description string `json:"description"`
}

// OverrideStatusRequest is the body of PUT /api/v1/orders/:orderId/status.
type OverrideStatusRequest struct {
	Status string `json:"status"`
}

// CreateDriverRequest is the body of POST /api/v1/drivers.
type CreateDriverRequest struct {
	OwnerID   string `json:"ownerId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// OrderResponse is the full order view returned to its owner.
type OrderResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customerId"`
	RelationID   string    `json:"relationId"`
	DriverID     *string   `json:"driverId,omitempty"`
	Size         string    `json:"size"`
	StartStop    string    `json:"startStop"`
	EndStop      string    `json:"endStop"`
	Departure    time.Time `json:"departure"`
	Arrival      time.Time `json:"arrival"`
	Price        float64   `json:"price"`
	OrderCode    string    `json:"orderCode"`
	PickupCode   string    `json:"pickupCode"`
	DeliveryCode string    `json:"deliveryCode"`
	Status       string    `json:"status"`
}

// StatusResponse reports the status an order just entered.
type StatusResponse struct {
	OrderCode string `json:"orderCode"`
	Status    string `json:"status"`
}

// CourseResponse is one bookable course of the availability search.
type CourseResponse struct {
	RelationID    string  `json:"relationId"`
	VehicleID     string  `json:"vehicleId"`
	CarrierID     string  `json:"carrierId"`
	RelationName  string  `json:"relationName"`
	StartStop     string  `json:"startStop"`
	EndStop       string  `json:"endStop"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	TotalPrice    float64 `json:"totalPrice"`
}

// OrderSummaryResponse is one row of a user's or carrier's order list.
type OrderSummaryResponse struct {
	ID        string    `json:"id"`
	OrderCode string    `json:"orderCode"`
	Status    string    `json:"status"`
	Size      string    `json:"size"`
	StartStop string    `json:"startStop"`
	EndStop   string    `json:"endStop"`
	Departure time.Time `json:"departure"`
	Arrival   time.Time `json:"arrival"`
	Price     float64   `json:"price"`
}

// HistoryEntryResponse is one row of an order's status history.
type HistoryEntryResponse struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

// ProblemResponse confirms a filed shipment problem.
type ProblemResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"orderId"`
	Description string    `json:"description"`
	ReportedAt  time.Time `json:"reportedAt"`
}

// DriverResponse is the driver view returned to the employing carrier,
// including the credentials handed to the driver.
type DriverResponse struct {
	ID        string `json:"id"`
	OwnerID   string `json:"ownerId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IDCode    string `json:"idCode"`
	PinCode   string `json:"pinCode"`
}

// CarrierStatsResponse aggregates a carrier's order counters.
type CarrierStatsResponse struct {
	TotalOrders      int     `json:"totalOrders"`
	ActiveOrders     int     `json:"activeOrders"`
	DeliveredOrders  int     `json:"deliveredOrders"`
	Interventions    int     `json:"interventions"`
	TotalEarnings    float64 `json:"totalEarnings"`
	EarningsComputed bool    `json:"earningsComputed"`
}

// TrackingResponse is the anonymous tracking view of a shipment.
type TrackingResponse struct {
	OrderCode string    `json:"orderCode"`
	Status    string    `json:"status"`
	StartStop string    `json:"startStop"`
	EndStop   string    `json:"endStop"`
	Departure time.Time `json:"departure"`
	Arrival   time.Time `json:"arrival"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func orderToResponse(o *shipment.Order) OrderResponse {
	resp := OrderResponse{
		ID:           o.ID().String(),
		CustomerID:   o.CustomerID().String(),
		RelationID:   o.RelationID().String(),
		Size:         o.Size().String(),
		StartStop:    o.StartStop(),
		EndStop:      o.EndStop(),
		Departure:    o.Departure(),
		Arrival:      o.Arrival(),
		Price:        o.Price(),
		OrderCode:    o.OrderCode(),
		PickupCode:   o.PickupCode(),
		DeliveryCode: o.DeliveryCode(),
		Status:       o.Status().String(),
	}
	if driverID := o.DriverID(); driverID != nil {
		s := driverID.String()
		resp.DriverID = &s
	}
	return resp
}

func courseToResponse(c queries.GetAvailableCoursesQueryResponse) CourseResponse {
	return CourseResponse{
		RelationID:    c.RelationID.String(),
		VehicleID:     c.VehicleID.String(),
		CarrierID:     c.CarrierID.String(),
		RelationName:  c.RelationName,
		StartStop:     c.StartStop,
		EndStop:       c.EndStop,
		DepartureTime: c.DepartureTime,
		ArrivalTime:   c.ArrivalTime,
		TotalPrice:    c.TotalPrice,
	}
}

func summaryToResponse(s queries.OrderSummaryResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:        s.ID.String(),
		OrderCode: s.OrderCode,
		Status:    s.Status,
		Size:      s.Size,
		StartStop: s.StartStop,
		EndStop:   s.EndStop,
		Departure: s.Departure,
		Arrival:   s.Arrival,
		Price:     s.Price,
	}
}

func problemToResponse(p *shipment.Problem) ProblemResponse {
	return ProblemResponse{
		ID:          p.ID().String(),
		OrderID:     p.OrderID().String(),
		Description: p.Description(),
		ReportedAt:  p.ReportedAt(),
	}
}

func driverToResponse(d *driver.Driver) DriverResponse {
	return DriverResponse{
		ID:        d.ID().String(),
		OwnerID:   d.OwnerID().String(),
		FirstName: d.FirstName(),
		LastName:  d.LastName(),
		IDCode:    d.IDCode(),
		PinCode:   d.PinCode(),
	}
}

func snapshotToResponse(s *ports.TrackingSnapshot) TrackingResponse {
	return TrackingResponse{
		OrderCode: s.OrderCode,
		Status:    s.Status,
		StartStop: s.StartStop,
		EndStop:   s.EndStop,
		Departure: s.Departure,
		Arrival:   s.Arrival,
		UpdatedAt: s.UpdatedAt,
	}
}
