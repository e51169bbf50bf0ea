package web

import (
	"net/http"

	"github.com/unrolled/render"
	"github.com/zhaodong-liu/Fantasy-Sports-League/controller"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func matchesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sport := model.ParseSport(r.URL.Query().Get("sport"))
		if !sport.Valid() {
			sport = model.DefaultSport
		}
		orderBy := r.URL.Query().Get("order_by")

		matches, err := ctrl.GetMatches(r.Context(), sport, orderBy)
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["sport"] = sport
		data["order"] = orderBy
		data["sports"] = model.Sports()
		data["matches"] = matches
		render.HTML(w, http.StatusOK, "matches", data)
	}
}

func matchEventsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID, err := idParam(r, "matchID")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", "invalid match id")
			return
		}

		events, err := ctrl.GetMatchEvents(r.Context(), matchID, r.URL.Query().Get("order_by"))
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["matchID"] = matchID
		data["events"] = events
		render.HTML(w, http.StatusOK, "matchEvents", data)
	}
}
