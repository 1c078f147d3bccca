package rest

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/linksera/internal/domain"
	"github.com/totegamma/linksera/internal/form"
)

//go:embed templates/*.html
var templateFS embed.FS

var nicheGlyphs = map[string]string{
	domain.NicheGambling: "🎲",
	domain.NicheCrypto:   "₿",
	domain.NicheAdult:    "🔞",
	domain.NicheCasino:   "🎰",
	domain.NicheBetting:  "🏇",
	domain.NicheForex:    "💱",
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"flag":       domain.FlagGlyph,
		"nicheField": form.NicheFieldName,
		"nicheGlyph": func(niche string) string {
			return nicheGlyphs[niche]
		},
		"nicheValue": func(v form.Values, niche, side string) string {
			offer := v.GreyNicheOffers.Offer(niche)
			if offer == nil {
				return ""
			}
			if side == "linkInsertion" {
				return offer.LinkInsertion
			}
			return offer.GuestPosting
		},
	}

	return template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
}

// reference is the option data every form render needs.
type reference struct {
	Languages    []domain.Language
	Countries    []domain.Country
	Categories   []domain.Option
	Niches       []domain.Option
	LinksAllowed []domain.Option
	Tagging      []domain.Option
	OfferTabs    []domain.Option
}

var formReference = reference{
	Languages:    domain.Languages,
	Countries:    domain.Countries,
	Categories:   domain.Categories,
	Niches:       domain.NicheLabels,
	LinksAllowed: domain.LinksAllowedOptions,
	Tagging:      domain.TaggingOptions,
	OfferTabs:    domain.OfferTabs,
}

var onboarding = []string{
	"How to add your website to the marketplace",
	"Setting pricing and niche/category filters",
	"Uploading sample articles or guidelines",
	"Editing or updating your website listing anytime",
	"Tips to make your listing stand out to buyers",
}

type formPage struct {
	Title      string
	Action     string
	ID         string
	Values     form.Values
	State      form.State
	Errors     map[string]string
	Ref        reference
	Onboarding []string
}

func newFormPage(id string, values form.Values, errs map[string]string) formPage {
	page := formPage{
		Title:  "Add website",
		Action: "/my-websites/add-website",
		ID:     id,
		Values: values,
		State:  form.Evaluate(values),
		Errors: errs,
		Ref:    formReference,
	}
	if id == "" {
		page.Onboarding = onboarding
	} else {
		page.Title = "Edit website"
		page.Action = "/my-websites/" + id
	}
	return page
}

// render executes into a buffer first so a template failure never leaves a
// half written response.
func (h *Handler) render(c echo.Context, code int, name string, data any) error {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	return c.HTMLBlob(code, buf.Bytes())
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
