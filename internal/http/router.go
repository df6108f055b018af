package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rhasan/estatedesk/internal/auth"
	"github.com/rhasan/estatedesk/internal/http/authn"
	"github.com/rhasan/estatedesk/internal/http/customer"
	"github.com/rhasan/estatedesk/internal/http/expense"
	"github.com/rhasan/estatedesk/internal/http/importcsv"
	"github.com/rhasan/estatedesk/internal/http/ledger"
	"github.com/rhasan/estatedesk/internal/http/opcost"
	"github.com/rhasan/estatedesk/internal/http/project"
	"github.com/rhasan/estatedesk/internal/http/report"
	"github.com/rhasan/estatedesk/internal/http/sale"
	"github.com/rhasan/estatedesk/internal/http/vendors"
)

type Handlers struct {
	Auth      *authn.Handler
	Projects  *project.Handler
	Customers *customer.Handler
	Vendors   *vendor.Handler
	Sales     *sale.Handler
	Expenses  *expense.Handler
	OpCosts   *opcost.Handler
	Ledger    *ledger.Handler
	Reports   *report.Handler
	Import    *importcsv.Handler
}

func New(mgr *auth.Manager, h Handlers, corsOrigins []string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", h.Auth.Routes)

		r.Group(func(r chi.Router) {
			r.Use(authn.RequireAuth(mgr))

			r.Route("/projects", h.Projects.Routes)
			r.Route("/customers", h.Customers.Routes)
			r.Route("/vendors", h.Vendors.Routes)
			r.Route("/sales", h.Sales.Routes)

			r.Route("/expenses", h.Expenses.Routes)
			r.Route("/payments", h.Expenses.PaymentRoutes)
			r.Route("/expense-items", h.Expenses.ItemRoutes)

			r.Route("/operating-costs", h.OpCosts.Routes)
			r.Route("/operating-cost-items", h.OpCosts.ItemRoutes)

			r.Route("/ledger", h.Ledger.Routes)
			r.Route("/reports", h.Reports.Routes)
			r.Route("/import", h.Import.Routes)
		})
	})

	return router
}
