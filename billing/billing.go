package billing

// SubscriptionStatus values mirror the billing provider's lifecycle.
type SubscriptionStatus string

const (
	StatusActive   SubscriptionStatus = "active"
	StatusCanceled SubscriptionStatus = "canceled"
	StatusPastDue  SubscriptionStatus = "past_due"
)

// Plan is a purchasable tier, identified by a unique key such as "starter"
// or "pro".
type Plan struct {
	ID           string   `json:"_id"`
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	PriceMonthly float64  `json:"price_monthly"`
	Features     []string `json:"features"`
}

// Subscription binds an organization to a plan. At most one subscription
// row exists per org; changing plans patches the existing row in place.
type Subscription struct {
	ID       string             `json:"_id"`
	OrgID    string             `json:"org_id"`
	PlanKey  string             `json:"plan_key"`
	Status   SubscriptionStatus `json:"status"`
	Provider string             `json:"provider"`
}

// Project is an org-scoped workspace.
type Project struct {
	ID          string `json:"_id"`
	OrgID       string `json:"org_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}
