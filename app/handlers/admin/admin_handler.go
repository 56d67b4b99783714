package admin

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/prasetiyohadi/go-gamestore/app/helpers"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
	"github.com/prasetiyohadi/go-gamestore/app/services"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render    *render.Render
	validator *validator.Validate
	gameRepo  repositories.GameRepositoryImpl
	genreRepo repositories.GenreRepositoryImpl
	userRepo  repositories.UserRepositoryImpl
	orderRepo repositories.OrderRepository
	orderSvc  *services.OrderService
	reviewSvc *services.ReviewService
}

func NewAdminHandler(
	render *render.Render,
	gameRepo repositories.GameRepositoryImpl,
	genreRepo repositories.GenreRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	orderRepo repositories.OrderRepository,
	orderSvc *services.OrderService,
	reviewSvc *services.ReviewService,
) *AdminHandler {
	return &AdminHandler{
		render:    render,
		validator: validator.New(),
		gameRepo:  gameRepo,
		genreRepo: genreRepo,
		userRepo:  userRepo,
		orderRepo: orderRepo,
		orderSvc:  orderSvc,
		reviewSvc: reviewSvc,
	}
}

func (h *AdminHandler) adminPageData(r *http.Request, extra map[string]interface{}) map[string]interface{} {
	datas := helpers.GetBaseData(r, extra)
	datas["IsAdminPage"] = true
	if adminID, ok := r.Context().Value(helpers.ContextKeyAdminID).(string); ok {
		datas["AdminID"] = adminID
	}
	return datas
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	games, err := h.gameRepo.GetGames(ctx)
	if err != nil {
		logrus.Errorf("Dashboard: failed to count games: %v", err)
	}
	users, err := h.userRepo.GetAllUsers(ctx)
	if err != nil {
		logrus.Errorf("Dashboard: failed to count users: %v", err)
	}
	orders, err := h.orderRepo.GetAllOrders(ctx)
	if err != nil {
		logrus.Errorf("Dashboard: failed to count orders: %v", err)
	}

	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}

	datas := h.adminPageData(r, map[string]interface{}{
		"Title":        "Admin Dashboard",
		"totalGames":   len(games),
		"totalUsers":   len(users),
		"totalOrders":  len(orders),
		"recentOrders": recent,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/dashboard", datas)
}
