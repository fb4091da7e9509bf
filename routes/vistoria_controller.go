package routes

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rimatec/vistoria/app"
	"github.com/rimatec/vistoria/database"
	"github.com/rimatec/vistoria/httpx"
	"github.com/rimatec/vistoria/log"
	"github.com/rimatec/vistoria/model"
)

const maxUploadMemory = 32 << 20

func GetVistoria(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// reload per request so edits from other processes show up
		emails, err := app.Recipients.Load()
		if err != nil {
			httpx.LogInternalError(w, "recipients.load", err)
			return
		}

		data := map[string]any{
			"Fields": model.Fields,
			"Emails": emails,
		}
		if flash, ok := httpx.PopFlash(w, r); ok {
			data["Flash"] = flash
		}
		renderPage(w, r, "vistoria.html", data)
	}
}

func PostVistoria(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseMultipartForm(maxUploadMemory)
		if err != nil && !errors.Is(err, http.ErrNotMultipart) {
			log.Debug("request.parse_form:", err)
			httpx.SetFlash(w, "danger", "❌ Erro ao enviar vistoria: "+err.Error())
			http.Redirect(w, r, "/vistoria", http.StatusSeeOther)
			return
		}

		v := model.FromForm(r.FormValue)

		// merge selected recipients with the optional ad-hoc one; a
		// novel ad-hoc address is also persisted for future surveys
		selected := append([]string{}, r.Form["emails"]...)
		novo := strings.TrimSpace(r.FormValue("novo_email"))
		if novo != "" {
			if _, err := app.Recipients.Add(novo); err != nil {
				log.Error("recipients.add:", err)
			}
			selected = append(selected, novo)
		}

		attachments, err := app.Uploads.SaveAll(r)
		if err != nil {
			log.Error("uploads.save:", err)
			httpx.SetFlash(w, "danger", "❌ Erro ao salvar anexos: "+err.Error())
			http.Redirect(w, r, "/vistoria", http.StatusSeeOther)
			return
		}

		// insert and notify are two independent steps: a row that was
		// saved stays saved even when the email fails afterwards, and
		// the flash message says which of the two went wrong
		id, err := database.InsertVistoria(r.Context(), app.DB, v)
		if err != nil {
			log.Error("db.insert_vistoria:", err)
			httpx.SetFlash(w, "danger", "❌ Erro ao salvar vistoria: "+err.Error())
			http.Redirect(w, r, "/vistoria", http.StatusSeeOther)
			return
		}
		log.Debugf("db.insert_vistoria: id=%d", id)

		err = app.Notifier.Send(v, attachments, selected)
		if err != nil {
			log.Error("mail.send:", err)
			httpx.SetFlash(w, "warning", "⚠️ Vistoria salva, mas o e-mail não foi enviado: "+err.Error())
		} else {
			httpx.SetFlash(w, "success", "✅ Vistoria enviada e salva com sucesso!")
		}
		http.Redirect(w, r, "/vistoria", http.StatusSeeOther)
	}
}
