package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"bindash/internal/dashboard"
	"bindash/internal/service"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// sortLink is one sort button: where clicking it leads and the arrow shown on it.
type sortLink struct {
	Href  string
	Arrow string
}

type dashboardPage struct {
	Loading    bool
	Error      string
	View       *dashboard.View
	SortByID   sortLink
	SortByFill sortLink
}

func newSortLink(state dashboard.State, field dashboard.SortField) sortLink {
	next := state.ToggleSort(field)
	q := url.Values{}
	if next.Search != "" {
		q.Set("search", next.Search)
	}
	q.Set("sort", string(next.SortField))
	q.Set("order", string(next.Direction))

	link := sortLink{Href: "/?" + q.Encode()}
	if state.SortField == field {
		link.Arrow = "▲"
		if state.Direction == dashboard.Descending {
			link.Arrow = "▼"
		}
	}
	return link
}

// Dashboard godoc
// @Summary HTML dashboard
// @Description Search box, sort toggles, colored bar chart and table. Replaced by a single message while loading or after a failed load.
// @Tags dashboard
// @Produce html
// @Param search query string false "Location substring"
// @Param sort query string false "id | location | fillLevel (alias fill_level)" default(id)
// @Param order query string false "asc | desc" default(asc)
// @Success 200 {string} string "HTML page"
// @Failure 400 {object} errorPayload
// @Failure 503 {string} string "Loading or error page"
// @Router / [get]
func Dashboard(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, err := stateFromQuery(c)
		if err != nil {
			return writeStateError(c, err)
		}

		page := dashboardPage{}
		status := fiber.StatusOK

		v, err := svc.View(c.UserContext(), state)
		switch {
		case err == nil:
			page.View = v
			page.SortByID = newSortLink(state, dashboard.SortByID)
			page.SortByFill = newSortLink(state, dashboard.SortByFillLevel)
		case errors.Is(err, service.ErrNotLoaded):
			page.Loading = true
			status = fiber.StatusServiceUnavailable
		case errors.Is(err, service.ErrLoadFailed):
			page.Error = err.Error()
			status = fiber.StatusServiceUnavailable
		default:
			return writeServiceError(c, err)
		}

		var buf bytes.Buffer
		if err := dashboardTmpl.Execute(&buf, page); err != nil {
			return err
		}
		c.Type("html", "utf-8")
		return c.Status(status).Send(buf.Bytes())
	}
}
