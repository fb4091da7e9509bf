package routes

import (
	"net/http"

	"github.com/rimatec/vistoria/app"
	"github.com/rimatec/vistoria/database"
	"github.com/rimatec/vistoria/httpx"
)

func GetHistorico(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vistorias, err := database.ListVistorias(r.Context(), app.DB)
		if err != nil {
			httpx.LogInternalError(w, "db.list_vistorias", err)
			return
		}

		renderPage(w, r, "historico.html", map[string]any{
			"Vistorias": vistorias,
		})
	}
}
