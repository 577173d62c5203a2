package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Health Routes
	RouteRoot   = "/"
	RouteHealth = "/test"

	// Auth Routes
	RouteAuthSignup = "/auth/signup"
	RouteAuthLogin  = "/auth/login"

	// Organization Routes
	RouteOrgs        = "/orgs"
	RouteOrgInvite   = "/orgs/{id}/invite"
	RouteOrgMembers  = "/orgs/{id}/members"
	RouteOrgSub      = "/orgs/{id}/subscription"
	RouteOrgProjects = "/orgs/{id}/projects"

	// Billing Routes
	RoutePlans = "/plans"

	// Catalog Routes
	RouteCategories    = "/categories"
	RouteProducts      = "/products"
	RouteOffers        = "/offers"
	RouteProductOffers = "/offers/{sku}"
	RouteFavorites     = "/favorites"
)
