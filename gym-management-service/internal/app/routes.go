package app

import "github.com/gymcore/gymcore/gym-management-service/internal/handler"

func (a *App) RegisterRoutes(h *handler.GymHandler) {
	gyms := a.Router.Group("/gyms")
	gyms.POST("", h.CreateGym)
	gyms.POST("/join", h.JoinGym)

	memberships := a.Router.Group("/memberships")
	memberships.GET("/:id", h.GetMembership)
}
