package routes

import (
	"net/http"
	"strings"

	"github.com/rimatec/vistoria/app"
	"github.com/rimatec/vistoria/httpx"
	"github.com/rimatec/vistoria/log"
)

func GetEmails(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		emails, err := app.Recipients.Load()
		if err != nil {
			httpx.LogInternalError(w, "recipients.load", err)
			return
		}

		data := map[string]any{"Emails": emails}
		if flash, ok := httpx.PopFlash(w, r); ok {
			data["Flash"] = flash
		}
		renderPage(w, r, "emails.html", data)
	}
}

// PostEmails adds and/or removes one address per submission; the two
// operations are not mutually exclusive.
func PostEmails(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			log.Debug("request.parse_form:", err)
			httpx.SetFlash(w, "danger", "❌ Erro ao processar o formulário: "+err.Error())
			http.Redirect(w, r, "/emails", http.StatusSeeOther)
			return
		}

		if novo := strings.TrimSpace(r.FormValue("novo_email")); novo != "" {
			added, err := app.Recipients.Add(novo)
			switch {
			case err != nil:
				log.Error("recipients.add:", err)
				httpx.SetFlash(w, "danger", "❌ Erro ao salvar e-mail: "+err.Error())
			case added:
				httpx.SetFlash(w, "success", "✅ E-mail adicionado com sucesso!")
			default:
				httpx.SetFlash(w, "warning", "⚠️ E-mail já cadastrado!")
			}
		}

		if remover := strings.TrimSpace(r.FormValue("remover")); remover != "" {
			removed, err := app.Recipients.Remove(remover)
			switch {
			case err != nil:
				log.Error("recipients.remove:", err)
				httpx.SetFlash(w, "danger", "❌ Erro ao remover e-mail: "+err.Error())
			case removed:
				httpx.SetFlash(w, "info", "🗑️ E-mail removido com sucesso!")
			}
		}

		http.Redirect(w, r, "/emails", http.StatusSeeOther)
	}
}
