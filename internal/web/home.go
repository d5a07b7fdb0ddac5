package web

import (
	"net/http"

	"styledecor/internal/domain"
)

type homeData struct {
	Services   []domain.Service
	Decorators []domain.Decorator
}

// Home renders the landing page: featured services and top decorators.
func (a *App) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	services, _, err := a.API.ListServices(ctx, domain.ServiceQuery{Limit: 6})
	if err != nil {
		a.fail(w, r, err)
		return
	}

	decorators, err := a.API.TopDecorators(ctx, 6)
	if err != nil {
		// The hero section still works without the decorator strip.
		a.Log.Warn().Err(err).Msg("top decorators unavailable")
		decorators = nil
	}

	a.render(w, r, http.StatusOK, "home", homeData{Services: services, Decorators: decorators})
}
