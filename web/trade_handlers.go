package web

import (
	"errors"
	"net/http"

	"github.com/unrolled/render"
	"github.com/zhaodong-liu/Fantasy-Sports-League/controller"
	"github.com/zhaodong-liu/Fantasy-Sports-League/db"
	"github.com/zhaodong-liu/Fantasy-Sports-League/metrics"
)

func tradesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderBy := r.URL.Query().Get("order_by")

		trades, pg, err := ctrl.ListTrades(r.Context(), orderBy, pageParam(r))
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["trades"] = trades
		data["pagination"] = pg
		data["order"] = orderBy
		render.HTML(w, http.StatusOK, "trades", data)
	}
}

func startTradePageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := ctrl.GetTradeOptions(r.Context(), identityFrom(r))
		if err != nil {
			// A user without a team cannot trade yet.
			if errors.Is(err, db.ErrTeamNotFound) {
				setFlash(w, "You need a team before you can trade.")
				http.Redirect(w, r, "/create_team", http.StatusSeeOther)
				return
			}
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["options"] = opts
		render.HTML(w, http.StatusOK, "startTrade", data)
	}
}

func startTradeHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		sellerTeamID, err1 := formID(r, "seller_team_id")
		sellerPlayerID, err2 := formID(r, "seller_player_id")
		buyerPlayerID, err3 := formID(r, "buyer_player_id")
		if err1 != nil || err2 != nil || err3 != nil {
			render.HTML(w, http.StatusBadRequest, "400", "a seller team and both players must be selected")
			return
		}

		err := ctrl.ExecuteTrade(r.Context(), identityFrom(r), sellerTeamID, sellerPlayerID, buyerPlayerID)
		metrics.ObserveTrade(err)
		if err != nil {
			var rej *db.RejectionError
			if errors.As(err, &rej) {
				// Show the procedure's message on the trade page instead
				// of a bare error page.
				setFlash(w, rej.Message)
				http.Redirect(w, r, "/start_trade", http.StatusSeeOther)
				return
			}
			renderError(render, w, err)
			return
		}

		setFlash(w, "Trade executed.")
		http.Redirect(w, r, "/trade", http.StatusSeeOther)
	}
}
