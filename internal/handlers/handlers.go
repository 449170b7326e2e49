package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/nftperks/raffleport/docs"
	adminhandlers "github.com/nftperks/raffleport/internal/handlers/admin"
	rafflehandlers "github.com/nftperks/raffleport/internal/handlers/raffles"
	"github.com/nftperks/raffleport/internal/service"
	"github.com/nftperks/raffleport/pkg/auth"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RaffleHandler interface {
	ListActive(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	CreateRaffle(w http.ResponseWriter, r *http.Request)
	GrantPoints(w http.ResponseWriter, r *http.Request)
	Deploy(w http.ResponseWriter, r *http.Request)
	DeploymentProgress(w http.ResponseWriter, r *http.Request)
	PrepareEnd(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	EndingProgress(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	MarkFailed(w http.ResponseWriter, r *http.Request)
	MarkDeployed(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	RaffleHandler RaffleHandler
	AdminHandler  AdminHandler
}

func New(s *service.Services, deployment adminhandlers.Deployment, ending adminhandlers.Ending) *Handlers {
	return &Handlers{
		RaffleHandler: rafflehandlers.New(s.ValidationService, s.LedgerService, s.RaffleService),
		AdminHandler:  adminhandlers.New(s.RaffleService, s.LedgerService, deployment, ending),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/raffles", func(r chi.Router) {
			r.Get("/", h.RaffleHandler.ListActive)
			r.Get("/{id}", h.RaffleHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Post("/{id}/validate", h.RaffleHandler.Validate)
				r.Post("/{id}/purchase", h.RaffleHandler.Purchase)
			})
		})

		r.Route("/admin/balances", func(r chi.Router) {
			r.Use(auth.AdminMiddleware)
			r.Post("/{wallet}/grant", h.AdminHandler.GrantPoints)
		})

		r.Route("/admin/raffles", func(r chi.Router) {
			r.Use(auth.AdminMiddleware)
			r.Post("/", h.AdminHandler.CreateRaffle)
			r.Post("/{id}/deploy", h.AdminHandler.Deploy)
			r.Get("/{id}/deployment", h.AdminHandler.DeploymentProgress)
			r.Post("/{id}/prepare-end", h.AdminHandler.PrepareEnd)
			r.Post("/{id}/end", h.AdminHandler.End)
			r.Get("/{id}/ending", h.AdminHandler.EndingProgress)
			r.Post("/{id}/cancel", h.AdminHandler.Cancel)
			r.Post("/{id}/mark-failed", h.AdminHandler.MarkFailed)
			r.Post("/{id}/mark-deployed", h.AdminHandler.MarkDeployed)
		})
	})

	return r
}
