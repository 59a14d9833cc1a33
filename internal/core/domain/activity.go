package domain

import "time"

// ActivityKind names a user-triggered action worth recording.
type ActivityKind string

const (
	ActivityLogin          ActivityKind = "login"
	ActivityLogout         ActivityKind = "logout"
	ActivityOrderPlaced    ActivityKind = "order_placed"
	ActivityProductCreated ActivityKind = "product_created"
	ActivityProductUpdated ActivityKind = "product_updated"
	ActivityProductDeleted ActivityKind = "product_deleted"
	ActivityStockUpdated   ActivityKind = "stock_updated"
)

// Activity is one entry in the admin activity feed. Entries are recorded
// asynchronously; losing one never fails the action that produced it.
type Activity struct {
	Kind      ActivityKind `json:"kind"`
	Username  string       `json:"username"`
	Detail    string       `json:"detail,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}
