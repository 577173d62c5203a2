package billing

// PlanRepo defines the storage operations for plans. The key field carries
// a unique index; Insert surfaces a violation as ErrPlanExists.
type PlanRepo interface {
	Insert(plan *Plan) (string, error)
	GetByKey(key string) (*Plan, error)
	List() ([]*Plan, error)
}

// SubscriptionRepo defines the storage operations for subscriptions. The
// org_id field carries a unique index so an org never accumulates more than
// one subscription row.
type SubscriptionRepo interface {
	Insert(sub *Subscription) (string, error)
	GetByOrg(orgID string) (*Subscription, error)
	// Update patches the plan key and status of an existing row.
	Update(id, planKey string, status SubscriptionStatus) error
}

// ProjectRepo defines the storage operations for projects.
type ProjectRepo interface {
	Insert(project *Project) (string, error)
	ListByOrg(orgID string) ([]*Project, error)
}
