package server

func (s *Server) initRoutes() {
	// Health
	s.RegisterRouteHandler("GET "+RouteRoot, ChainMiddleware(s.RootHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))

	// AUTH
	s.RegisterRouteHandler("POST "+RouteAuthSignup, ChainMiddleware(s.SignupHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))

	// Organizations (require a valid bearer token)
	s.RegisterRouteHandler("POST "+RouteOrgs, ChainMiddleware(s.CreateOrgHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteOrgs, ChainMiddleware(s.ListOrgsHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteOrgInvite, ChainMiddleware(s.InviteHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteOrgMembers, ChainMiddleware(s.MembersHandler(), s.APIMiddleware(s.RequireAuth())...))

	// Billing
	s.RegisterRouteHandler("POST "+RoutePlans, ChainMiddleware(s.CreatePlanHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RoutePlans, ChainMiddleware(s.ListPlansHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteOrgSub, ChainMiddleware(s.SubscribeHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteOrgSub, ChainMiddleware(s.SubscriptionHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteOrgProjects, ChainMiddleware(s.CreateProjectHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteOrgProjects, ChainMiddleware(s.ListProjectsHandler(), s.APIMiddleware(s.RequireAuth())...))

	// Catalog (reads are public, writes require a token)
	s.RegisterRouteHandler("POST "+RouteCategories, ChainMiddleware(s.CreateCategoryHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteCategories, ChainMiddleware(s.ListCategoriesHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteProducts, ChainMiddleware(s.CreateProductHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteProducts, ChainMiddleware(s.ListProductsHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteOffers, ChainMiddleware(s.CreateOfferHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteProductOffers, ChainMiddleware(s.ProductOffersHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteFavorites, ChainMiddleware(s.AddFavoriteHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteFavorites, ChainMiddleware(s.ListFavoritesHandler(), s.APIMiddleware(s.RequireAuth())...))
}
