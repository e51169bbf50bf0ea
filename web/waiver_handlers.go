package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/unrolled/render"
	"github.com/zhaodong-liu/Fantasy-Sports-League/controller"
	"github.com/zhaodong-liu/Fantasy-Sports-League/db"
	"github.com/zhaodong-liu/Fantasy-Sports-League/metrics"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func waiversHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sortOrder := r.URL.Query().Get("sort")

		waivers, err := ctrl.GetWaiverPlayers(r.Context(), sortOrder)
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["waivers"] = waivers
		data["order"] = sortOrder
		render.HTML(w, http.StatusOK, "waivers", data)
	}
}

func waiverHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		waiverID, err := idParam(r, "waiverID")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", "invalid waiver id")
			return
		}

		wv, err := ctrl.GetWaiverDetails(r.Context(), waiverID)
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["waiver"] = wv
		render.HTML(w, http.StatusOK, "waiver", data)
	}
}

// The decision form lives on the detail page, so a GET here just goes
// there.
func updateWaiverPageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		waiverID, err := idParam(r, "waiverID")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", "invalid waiver id")
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/waivers/%d", waiverID), http.StatusSeeOther)
	}
}

func updateWaiverHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		waiverID, err := idParam(r, "waiverID")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", "invalid waiver id")
			return
		}
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		status, ok := model.ParseWaiverStatus(r.PostForm.Get("status"))
		if !ok {
			render.HTML(w, http.StatusBadRequest, "400", "invalid waiver status")
			return
		}

		msg, err := ctrl.UpdateWaiverStatus(r.Context(), identityFrom(r), waiverID, status)
		if err != nil {
			var rej *db.RejectionError
			if errors.As(err, &rej) {
				setFlash(w, rej.Message)
				http.Redirect(w, r, fmt.Sprintf("/waivers/%d", waiverID), http.StatusSeeOther)
				return
			}
			renderError(render, w, err)
			return
		}

		metrics.ObserveWaiverDecision(string(status))
		if msg == "" {
			msg = "Waiver updated."
		}
		setFlash(w, msg)
		http.Redirect(w, r, "/waivers", http.StatusSeeOther)
	}
}
