package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"promana-go/internal/config"
	"promana-go/internal/metrics"
	"promana-go/internal/transport/httpserver/handler"
	"promana-go/internal/transport/httpserver/middleware"
	"promana-go/pkg/logger"
)

// NewRouter wires every resource. m may be nil when metrics are disabled.
func NewRouter(cfg config.Config, handlers *handler.Handlers, m *metrics.Metrics, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.CORSOrigins))
	if m != nil {
		r.Use(middleware.NewMetrics(m))
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
		log.Debug("http: metrics enabled", "path", "/metrics")
	}

	r.Get("/healthz", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.Entry)
		r.Get("/link-relations/", handlers.LinkRelations)

		r.Get("/members/", handlers.ListMembers)
		r.Post("/members/", handlers.CreateMember)
		r.Route("/members/{member}", func(r chi.Router) {
			r.Get("/", handlers.GetMember)
			r.Put("/", handlers.UpdateMember)
			r.Patch("/", handlers.UpdateMember)
			r.Delete("/", handlers.DeleteMember)
		})

		r.Get("/projects/", handlers.ListProjects)
		r.Post("/projects/", handlers.CreateProject)
		r.Route("/projects/{project}", func(r chi.Router) {
			r.Get("/", handlers.GetProject)
			r.Put("/", handlers.UpdateProject)
			r.Patch("/", handlers.UpdateProject)
			r.Delete("/", handlers.DeleteProject)

			r.Get("/members/", handlers.ListProjectMembers)
			r.Post("/members/", handlers.AddProjectMember)
			r.Get("/members/{member}/", handlers.GetProjectMember)
			r.Delete("/members/{member}/", handlers.RemoveProjectMember)

			r.Get("/costs/", handlers.ListCosts)
			r.Post("/costs/", handlers.CreateCost)
			r.Get("/costs/{cost}/", handlers.GetCost)
			r.Put("/costs/{cost}/", handlers.UpdateCost)
			r.Patch("/costs/{cost}/", handlers.UpdateCost)
			r.Delete("/costs/{cost}/", handlers.DeleteCost)

			r.Get("/hours/", handlers.ListHourEntries)
			r.Post("/hours/", handlers.CreateHourEntry)
			r.Get("/hours/{entry}/", handlers.GetHourEntry)
			r.Put("/hours/{entry}/", handlers.UpdateHourEntry)
			r.Patch("/hours/{entry}/", handlers.UpdateHourEntry)
			r.Delete("/hours/{entry}/", handlers.DeleteHourEntry)

			r.Get("/phases/", handlers.ListPhases)
			r.Post("/phases/", handlers.CreatePhase)
			r.Route("/phases/{phase}", func(r chi.Router) {
				r.Get("/", handlers.GetPhase)
				r.Put("/", handlers.UpdatePhase)
				r.Patch("/", handlers.UpdatePhase)
				r.Delete("/", handlers.DeletePhase)

				r.Get("/tasks/", handlers.ListTasks)
				r.Post("/tasks/", handlers.CreateTask)
				r.Route("/tasks/{task}", func(r chi.Router) {
					r.Get("/", handlers.GetTask)
					r.Put("/", handlers.UpdateTask)
					r.Patch("/", handlers.UpdateTask)
					r.Delete("/", handlers.DeleteTask)

					r.Get("/members/", handlers.ListTaskMembers)
					r.Post("/members/", handlers.AddTaskMember)
					r.Get("/members/{member}/", handlers.GetTaskMember)
					r.Delete("/members/{member}/", handlers.RemoveTaskMember)
				})
			})
		})
	})

	return r
}
