package http

import "time"

// IDItem is the {"id": n} element used in list responses.
type IDItem struct {
	ID int `json:"id"`
}

// CourierItem is one entry of POST /couriers.
type CourierItem struct {
	CourierID    int      `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int    `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

// CreateCouriersRequest is the body of POST /couriers.
type CreateCouriersRequest struct {
	Data []CourierItem `json:"data"`
}

// CreateCouriersResponse is returned with 201 Created.
type CreateCouriersResponse struct {
	Couriers []IDItem `json:"couriers"`
}

// OrderItem is one entry of POST /orders.
type OrderItem struct {
	OrderID       int      `json:"order_id"`
	Weight        float64  `json:"weight"`
	Region        int      `json:"region"`
	DeliveryHours []string `json:"delivery_hours"`
}

// CreateOrdersRequest is the body of POST /orders.
type CreateOrdersRequest struct {
	Data []OrderItem `json:"data"`
}

// CreateOrdersResponse is returned with 201 Created.
type CreateOrdersResponse struct {
	Orders []IDItem `json:"orders"`
}

// PatchCourierRequest is the body of PATCH /couriers/:courier_id. Absent fields stay unchanged.
type PatchCourierRequest struct {
	CourierType  *string  `json:"courier_type"`
	Regions      []int    `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

// PatchCourierResponse is the courier profile after the update.
type PatchCourierResponse struct {
	CourierID      int      `json:"courier_id"`
	CourierType    string   `json:"courier_type"`
	Regions        []int    `json:"regions"`
	WorkingHours   []string `json:"working_hours"`
	ReleasedOrders []IDItem `json:"released_orders,omitempty"`
}

// AssignOrdersRequest is the body of POST /orders/assign.
type AssignOrdersRequest struct {
	CourierID int `json:"courier_id"`
}

// AssignOrdersResponse lists the orders assigned by the call. AssignTime is
// omitted when nothing was assigned.
type AssignOrdersResponse struct {
	Orders     []IDItem   `json:"orders"`
	AssignTime *time.Time `json:"assign_time,omitempty"`
}

// CompleteOrderRequest is the body of POST /orders/complete.
type CompleteOrderRequest struct {
	CourierID    int       `json:"courier_id"`
	OrderID      int       `json:"order_id"`
	CompleteTime time.Time `json:"complete_time"`
}

// CompleteOrderResponse echoes the completed order id.
type CompleteOrderResponse struct {
	OrderID int `json:"order_id"`
}

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toIDItems(ids []int) []IDItem {
	items := make([]IDItem, len(ids))
	for i, id := range ids {
		items[i] = IDItem{ID: id}
	}
	return items
}
