package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/unrolled/render"
	"github.com/zhaodong-liu/Fantasy-Sports-League/controller"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func draftsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderBy := r.URL.Query().Get("order_by")

		drafts, pg, err := ctrl.ListDrafts(r.Context(), orderBy, pageParam(r))
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["drafts"] = drafts
		data["pagination"] = pg
		data["order"] = orderBy
		render.HTML(w, http.StatusOK, "drafts", data)
	}
}

func draftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draftID, err := idParam(r, "draftID")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", "invalid draft id")
			return
		}

		d, players, err := ctrl.GetDraft(r.Context(), draftID)
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["draft"] = d
		data["players"] = players
		render.HTML(w, http.StatusOK, "draft", data)
	}
}

func draftFormHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := ctrl.ListLeagues(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["leagues"] = leagues
		render.HTML(w, http.StatusOK, "draftForm", data)
	}
}

func startDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		leagueID, err := formID(r, "league_id")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", "invalid league id")
			return
		}

		order, ok := model.ParseDraftOrder(r.PostForm.Get("draft_order"))
		if !ok {
			render.HTML(w, http.StatusBadRequest, "400", "invalid draft order")
			return
		}

		var date time.Time
		if d := r.PostForm.Get("draft_date"); d != "" {
			date, err = time.Parse(time.DateOnly, d)
			if err != nil {
				render.HTML(w, http.StatusBadRequest, "400", "invalid draft date, expected YYYY-MM-DD")
				return
			}
		}

		id, err := ctrl.StartDraft(r.Context(), identityFrom(r), leagueID, date, order)
		if err != nil {
			renderError(render, w, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/draft/%d", id), http.StatusSeeOther)
	}
}
