// Package api assembles the Echo server of the mock 3Commas API: middleware,
// signed /public/api/ver1 routes and the operational endpoints.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/threecommas/internal/api/handlers"
	mw "github.com/donaldgifford/threecommas/internal/api/middleware"
	"github.com/donaldgifford/threecommas/internal/store"
	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

// APIPrefix is the path prefix every signed route lives under.
const APIPrefix = "/public/api/ver1"

// Credentials are the key pair the mock server accepts.
type Credentials struct {
	APIKey    string
	APISecret string
}

// NewServer builds the Echo instance serving st. Requests under APIPrefix must
// be signed with creds.
func NewServer(st store.Store, creds Credentials, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(log)

	e.Use(mw.Recovery(log))
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics(APIPrefix))

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group(APIPrefix, mw.Signature(creds.APIKey, creds.APISecret, log))
	registerRoutes(v1, st)

	return e
}

func registerRoutes(g *echo.Group, st store.Store) {
	deals := handlers.NewDealsHandler(st)
	g.GET("/deals", deals.List)
	g.GET("/deals/:id/show", deals.Show)
	g.GET("/deals/:id/market_orders", deals.MarketOrders)
	g.POST("/deals/:id/cancel", deals.Cancel)
	g.POST("/deals/:id/panic_sell", deals.PanicSell)
	g.POST("/deals/:id/update_deal", deals.Update)
	g.POST("/deals/:id/update_max_safety_orders", deals.UpdateMaxSafetyOrders)
	g.POST("/deals/:id/update_tp", deals.UpdateTakeProfit)

	bots := handlers.NewBotsHandler(st)
	g.GET("/bots", bots.List)
	g.GET("/bots/pairs_black_list", bots.PairsBlackList)
	g.POST("/bots/update_pairs_black_list", bots.UpdatePairsBlackList)
	g.GET("/bots/:id/show", bots.Show)
	g.POST("/bots/:id/enable", bots.Enable)
	g.POST("/bots/:id/disable", bots.Disable)
	g.POST("/bots/:id/delete", bots.Delete)

	accounts := handlers.NewAccountsHandler(st)
	g.GET("/accounts", accounts.List)
	g.GET("/accounts/:id", accounts.Get)

	grid := handlers.NewGridBotsHandler(st)
	g.GET("/grid_bots", grid.List)
	g.GET("/grid_bots/:id", grid.Show)
	g.DELETE("/grid_bots/:id", grid.Delete)
	g.POST("/grid_bots/:id/enable", grid.Enable)
	g.POST("/grid_bots/:id/disable", grid.Disable)

	market := handlers.NewMarketplaceHandler(st)
	g.GET("/marketplace/items", market.Items)
	g.GET("/marketplace/:id/signals", market.Signals)

	users := handlers.NewUsersHandler(st)
	g.POST("/users/change_mode", users.ChangeMode)
}

// errorHandler renders router errors (unknown route, wrong method) with the
// 3Commas error envelope.
func errorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
		}

		body := threecommas.ErrorBody{
			Error:            handlers.CodeInternalError,
			ErrorDescription: http.StatusText(status),
		}
		switch status {
		case http.StatusNotFound:
			body.Error = handlers.CodeNotFound
		case http.StatusMethodNotAllowed:
			body.Error = "method_not_allowed"
		default:
			log.Error("unhandled error", "path", c.Request().URL.Path, "error", err)
		}

		if werr := c.JSON(status, body); werr != nil {
			log.Error("writing error response", "error", werr)
		}
	}
}
