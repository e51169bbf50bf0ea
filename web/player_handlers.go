package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/unrolled/render"
	"github.com/zhaodong-liu/Fantasy-Sports-League/controller"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func playersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderBy := r.URL.Query().Get("order_by")

		stats, pg, err := ctrl.ListPlayerStats(r.Context(), orderBy, pageParam(r))
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["players"] = stats
		data["pagination"] = pg
		data["order"] = orderBy
		render.HTML(w, http.StatusOK, "players", data)
	}
}

func playerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := idParam(r, "playerID")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", "invalid player id")
			return
		}

		p, err := ctrl.GetPlayerDetails(r.Context(), playerID)
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["player"] = p
		render.HTML(w, http.StatusOK, "player", data)
	}
}

func playerFormHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData(w, r)
		data["sports"] = model.Sports()
		render.HTML(w, http.StatusOK, "playerForm", data)
	}
}

func playerFromForm(r *http.Request) (*model.Player, error) {
	points, err := strconv.ParseFloat(strings.TrimSpace(r.PostForm.Get("fantasy_points")), 64)
	if err != nil {
		points = 0
	}

	return &model.Player{
		FullName:      r.PostForm.Get("full_name"),
		Sport:         model.ParseSport(r.PostForm.Get("sport")),
		Position:      r.PostForm.Get("position"),
		RealTeam:      r.PostForm.Get("real_team"),
		FantasyPoints: points,
		AvaiStatus:    r.PostForm.Get("avai_status"),
		PhotoURL:      strings.TrimSpace(r.PostForm.Get("photo_url")),
	}, nil
}

func createPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		p, err := playerFromForm(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		if err := ctrl.CreatePlayer(r.Context(), identityFrom(r), p); err != nil {
			renderError(render, w, err)
			return
		}

		setFlash(w, "Player created.")
		http.Redirect(w, r, "/players", http.StatusSeeOther)
	}
}

func updatePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := idParam(r, "playerID")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", "invalid player id")
			return
		}
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		p, err := playerFromForm(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		p.ID = playerID

		if err := ctrl.UpdatePlayer(r.Context(), identityFrom(r), p); err != nil {
			renderError(render, w, err)
			return
		}

		setFlash(w, "Player updated.")
		http.Redirect(w, r, "/player/"+strconv.Itoa(int(playerID)), http.StatusSeeOther)
	}
}

func deletePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := idParam(r, "playerID")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", "invalid player id")
			return
		}

		if err := ctrl.DeletePlayer(r.Context(), identityFrom(r), playerID); err != nil {
			renderError(render, w, err)
			return
		}

		setFlash(w, "Player deleted.")
		http.Redirect(w, r, "/players", http.StatusSeeOther)
	}
}
