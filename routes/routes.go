package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rimatec/vistoria/app"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/vistoria", http.StatusSeeOther)
	})

	root.Get("/vistoria", GetVistoria(app))
	root.Post("/vistoria", PostVistoria(app))

	root.Get("/emails", GetEmails(app))
	root.Post("/emails", PostEmails(app))

	root.Get("/historico", GetHistorico(app))

	return root
}
