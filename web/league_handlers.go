package web

import (
	"fmt"
	"net/http"

	"github.com/unrolled/render"
	"github.com/zhaodong-liu/Fantasy-Sports-League/controller"
	"github.com/zhaodong-liu/Fantasy-Sports-League/metrics"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func leaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := ctrl.ListLeagues(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["leagues"] = leagues
		render.HTML(w, http.StatusOK, "leagues", data)
	}
}

func userPublicLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		public, _, err := ctrl.GetUserLeagues(r.Context(), identityFrom(r).UserID)
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["title"] = "Public Leagues"
		data["leagues"] = public
		render.HTML(w, http.StatusOK, "userLeagues", data)
	}
}

func userPrivateLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, private, err := ctrl.GetUserLeagues(r.Context(), identityFrom(r).UserID)
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["title"] = "Private Leagues"
		data["leagues"] = private
		render.HTML(w, http.StatusOK, "userLeagues", data)
	}
}

func userTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.GetUserTeams(r.Context(), identityFrom(r).UserID)
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["teams"] = teams
		render.HTML(w, http.StatusOK, "userTeams", data)
	}
}

// teamInfoHandler shows either the lookup form or the lookup results,
// depending on whether a name was given.
func teamInfoHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")

		data := pageData(w, r)
		data["name"] = name
		if name != "" {
			infos, err := ctrl.GetTeamInfo(r.Context(), name)
			if err != nil {
				renderError(render, w, err)
				return
			}
			data["results"] = infos
		}
		render.HTML(w, http.StatusOK, "teamInfo", data)
	}
}

func createTeamPageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := ctrl.ListLeagues(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["leagues"] = leagues
		data["sports"] = model.Sports()
		render.HTML(w, http.StatusOK, "createTeam", data)
	}
}

func createTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
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
		sport := model.ParseSport(r.PostForm.Get("sport"))

		id, err := ctrl.CreateTeam(r.Context(), identityFrom(r), r.PostForm.Get("team_name"), sport, leagueID)
		if err != nil {
			renderError(render, w, err)
			return
		}

		metrics.ObserveTeamCreated()
		setFlash(w, fmt.Sprintf("Team created with id %d.", id))
		http.Redirect(w, r, "/teams/user", http.StatusSeeOther)
	}
}
