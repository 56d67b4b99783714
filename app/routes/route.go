package routes

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/prasetiyohadi/go-gamestore/app/configs"
	"github.com/prasetiyohadi/go-gamestore/app/handlers"
	"github.com/prasetiyohadi/go-gamestore/app/handlers/admin"
	"github.com/prasetiyohadi/go-gamestore/app/middlewares"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
	"github.com/prasetiyohadi/go-gamestore/app/services"
	"github.com/prasetiyohadi/go-gamestore/app/utils/renderer"
	"github.com/prasetiyohadi/go-gamestore/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) (*mux.Router, error) {
	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		return nil, err
	}

	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	cartStore := sessions.NewCookieCartStore(keys.AuthKey, keys.EncKey)
	render := renderer.New()

	gameRepo := repositories.NewGameRepository(db)
	genreRepo := repositories.NewGenreRepository(db)
	userRepo := repositories.NewUserRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	cartSvc := services.NewCartService(gameRepo)
	checkoutSvc := services.NewCheckoutService(db, gameRepo, orderRepo, orderItemRepo)
	wishlistSvc := services.NewWishlistService(wishlistRepo, gameRepo)
	reviewSvc := services.NewReviewService(reviewRepo, configs.LoadENV.ReviewImageDir)
	orderSvc := services.NewOrderService(orderRepo)

	gameHandler := handlers.NewGameHandler(gameRepo, genreRepo, render)
	cartHandler := handlers.NewCartHandler(cartSvc, cartStore, render)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutSvc, cartStore)
	orderHandler := handlers.NewOrderHandler(render, orderRepo)
	wishlistHandler := handlers.NewWishlistHandler(wishlistSvc, render)
	reviewHandler := handlers.NewReviewHandler(reviewSvc, render)
	authHandler := handlers.NewAuthHandler(userRepo, adminRepo, sessionStore, render)
	adminHandler := admin.NewAdminHandler(render, gameRepo, genreRepo, userRepo, orderRepo, orderSvc, reviewSvc)

	router := mux.NewRouter()

	csrfMiddleware := csrf.Protect(
		keys.AuthKey,
		csrf.Secure(configs.LoadENV.APP_ENV == "production"),
		csrf.Path("/"),
	)
	router.Use(csrfMiddleware)
	router.Use(middlewares.UserContextMiddleware(sessionStore))
	router.Use(middlewares.CartCountMiddleware(cartStore))

	fs := http.FileServer(http.Dir("public"))
	router.PathPrefix("/public/").Handler(http.StripPrefix("/public/", fs))

	// Storefront
	router.HandleFunc("/", gameHandler.Home).Methods("GET")
	router.HandleFunc("/games", gameHandler.Games).Methods("GET")
	router.HandleFunc("/games/{slug}", gameHandler.GameDetail).Methods("GET")
	router.HandleFunc("/reviews", reviewHandler.GetReviews).Methods("GET")

	// Auth
	router.HandleFunc("/login", authHandler.LoginGet).Methods("GET")
	router.HandleFunc("/login", authHandler.LoginPost).Methods("POST")
	router.HandleFunc("/register", authHandler.RegisterGet).Methods("GET")
	router.HandleFunc("/register", authHandler.RegisterPost).Methods("POST")
	router.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// Cart lives in the session, no login required.
	router.HandleFunc("/carts", cartHandler.GetCart).Methods("GET")
	router.HandleFunc("/carts/add", cartHandler.AddItem).Methods("POST")
	router.HandleFunc("/carts/update", cartHandler.UpdateItem).Methods("POST")
	router.HandleFunc("/carts/remove", cartHandler.RemoveItem).Methods("POST")
	router.HandleFunc("/carts/clear", cartHandler.ClearCart).Methods("POST")

	// Customer-only routes
	userRouter := router.NewRoute().Subrouter()
	userRouter.Use(middlewares.RequireUser)
	userRouter.HandleFunc("/checkout", checkoutHandler.Checkout).Methods("POST")
	userRouter.HandleFunc("/orders", orderHandler.OrderListGet).Methods("GET")
	userRouter.HandleFunc("/orders/{orderNumber}", orderHandler.OrderDetailGet).Methods("GET")
	userRouter.HandleFunc("/wishlist", wishlistHandler.GetWishlist).Methods("GET")
	userRouter.HandleFunc("/wishlist/add", wishlistHandler.AddToWishlist).Methods("POST")
	userRouter.HandleFunc("/wishlist/remove", wishlistHandler.RemoveFromWishlist).Methods("POST")
	userRouter.HandleFunc("/reviews", reviewHandler.SubmitReview).Methods("POST")

	// Admin back office
	router.HandleFunc("/admin/login", authHandler.AdminLoginGet).Methods("GET")
	router.HandleFunc("/admin/login", authHandler.AdminLoginPost).Methods("POST")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(adminRepo, sessionStore))
	adminRouter.HandleFunc("/dashboard", adminHandler.Dashboard).Methods("GET")
	adminRouter.HandleFunc("/logout", authHandler.AdminLogout).Methods("POST")

	adminRouter.HandleFunc("/games", adminHandler.GetGamesPage).Methods("GET")
	adminRouter.HandleFunc("/games/add", adminHandler.AddGamePage).Methods("GET")
	adminRouter.HandleFunc("/games/add", adminHandler.AddGamePost).Methods("POST")
	adminRouter.HandleFunc("/games/edit/{id}", adminHandler.EditGamePage).Methods("GET")
	adminRouter.HandleFunc("/games/edit/{id}", adminHandler.EditGamePost).Methods("POST")

	adminRouter.HandleFunc("/orders", adminHandler.GetOrdersPage).Methods("GET")
	adminRouter.HandleFunc("/orders/status", adminHandler.UpdateOrderStatusPost).Methods("POST")

	adminRouter.HandleFunc("/users", adminHandler.GetUsersPage).Methods("GET")
	adminRouter.HandleFunc("/users/delete/{id}", adminHandler.DeleteUserPost).Methods("POST")

	adminRouter.HandleFunc("/reviews", adminHandler.GetReviewsPage).Methods("GET")
	adminRouter.HandleFunc("/reviews/edit/{id}", adminHandler.UpdateReviewPost).Methods("POST")
	adminRouter.HandleFunc("/reviews/delete/{id}", adminHandler.SoftDeleteReviewPost).Methods("POST")
	adminRouter.HandleFunc("/reviews/restore/{id}", adminHandler.RestoreReviewPost).Methods("POST")
	adminRouter.HandleFunc("/reviews/force-delete/{id}", adminHandler.HardDeleteReviewPost).Methods("POST")

	return router, nil
}
