package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")
	auth := api.Group("/auth")
	auth.POST("/login", s.login)

	protected := api.Group("")
	protected.Use(s.middleware.JWT.RequireJWT())

	protected.GET("/auth/me", s.me)

	users := protected.Group("/users")
	users.GET("", s.listUsers)
	users.POST("/search", s.userSearchEvent)
	users.GET("/snapshot", s.userSnapshot)
	users.GET("/:id", s.getUser)

	products := protected.Group("/products")
	products.GET("", s.listProducts)
	products.POST("/search", s.productSearchEvent)
	products.GET("/snapshot", s.productSnapshot)
	products.GET("/categories", s.listCategories)
	products.GET("/:id", s.getProduct)

	protected.POST("/cache/clear", s.clearCaches)
}
