package setup

import (
	"context"

	"github.com/postdeck/postdeck/internal/apiclient"
	"github.com/postdeck/postdeck/internal/config"
	"github.com/postdeck/postdeck/internal/controller"
	"github.com/postdeck/postdeck/internal/handler"
	"github.com/postdeck/postdeck/internal/markup"
)

type Dependencies struct {
	Handler    *handler.Handler
	Controller *controller.Controller
	Public     config.Public
}

func SetupDependencies(cfg *config.Config) *Dependencies {
	client := apiclient.New(cfg.Public.StoreBaseURL)
	ctrl := controller.New(client)
	renderer := markup.New()

	h := handler.New(ctrl, renderer, cfg.Public)

	return &Dependencies{
		Handler:    h,
		Controller: ctrl,
		Public:     cfg.Public,
	}
}

// Warmup loads the session-scoped reference data and the initial listing.
// Failures are logged by the controller and are not fatal.
func (d *Dependencies) Warmup(ctx context.Context) {
	d.Controller.LoadTags(ctx)
	d.Controller.Navigate(ctx, nil)
}
