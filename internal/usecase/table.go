package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/zeebo/xxh3"

	"github.com/totegamma/linksera/internal/domain"
	"github.com/totegamma/linksera/internal/pagination"
)

// NicheIcon is one cell of the grey niche column.
type NicheIcon struct {
	Niche  string `json:"niche"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

// Row is the display form of one listing in the table.
type Row struct {
	ID              string      `json:"id"`
	WebsiteURL      string      `json:"websiteUrl"`
	Country         string      `json:"country"`
	CountryFlag     string      `json:"countryFlag"`
	Language        string      `json:"language"`
	Category        string      `json:"category"`
	OtherCategories string      `json:"otherCategories"`
	GreyNiches      []NicheIcon `json:"greyNiches"`
	Href            string      `json:"href"`
}

// Table is one page of rows together with its navigation.
type Table struct {
	Rows    []Row           `json:"rows"`
	Page    pagination.Page `json:"pagination"`
	Version string          `json:"version"`
}

type TableUsecase struct {
	repo     ListingRepository
	pageSize int
	rows     *cache.Cache
}

func NewTableUsecase(repo ListingRepository, pageSize int) *TableUsecase {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &TableUsecase{
		repo:     repo,
		pageSize: pageSize,
		rows:     cache.New(10*time.Minute, 30*time.Minute),
	}
}

// Page projects the requested page of the listing table.
// Out of range pages are clamped.
func (uc *TableUsecase) Page(ctx context.Context, page int) (Table, error) {
	ctx, span := tracer.Start(ctx, "Table.Usecase.Page")
	defer span.End()

	listings, err := uc.repo.GetAll(ctx)
	if err != nil {
		span.RecordError(err)
		return Table{}, err
	}

	p := pagination.Calculate(len(listings), uc.pageSize, page)
	visible := pagination.Slice(listings, p)

	rows := make([]Row, 0, len(visible))
	for _, l := range visible {
		rows = append(rows, uc.project(l))
	}

	return Table{
		Rows:    rows,
		Page:    p,
		Version: Version(listings),
	}, nil
}

// project memoizes Project on the listing content; edits change the key.
func (uc *TableUsecase) project(l domain.Listing) Row {
	raw, err := json.Marshal(l)
	if err != nil {
		return Project(l)
	}
	key := strconv.FormatUint(xxh3.Hash(raw), 16)

	if cached, ok := uc.rows.Get(key); ok {
		return cached.(Row)
	}
	row := Project(l)
	uc.rows.SetDefault(key, row)
	return row
}

// Version fingerprints the whole collection. It changes whenever a listing is
// added or edited and is used as the table ETag.
func Version(listings []domain.Listing) string {
	h := xxh3.New()
	for _, l := range listings {
		raw, err := json.Marshal(l)
		if err != nil {
			continue
		}
		h.Write(raw)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// Project maps a listing to its table row. Codes missing from the reference
// data fall back to placeholders and never fail the row.
func Project(l domain.Listing) Row {
	row := Row{
		ID:              l.ID,
		WebsiteURL:      l.WebsiteURL,
		Language:        domain.NotAvailable,
		Category:        domain.NotAvailable,
		OtherCategories: domain.NotAvailable,
		Href:            "/my-websites/" + l.ID,
	}

	if c, ok := domain.LookupCountry(l.Country); ok {
		row.Country = c.Label
		row.CountryFlag = c.Flag()
	}
	if lang, ok := domain.LookupLanguage(l.Language); ok {
		row.Language = lang.Label
	}
	if primary := l.PrimaryCategory(); primary != "" {
		row.Category = domain.CategoryLabel(primary)
	}
	if others := l.OtherCategories(); len(others) > 0 {
		labels := make([]string, 0, len(others))
		for _, c := range others {
			labels = append(labels, domain.CategoryLabel(c))
		}
		row.OtherCategories = strings.Join(labels, ", ")
	}

	row.GreyNiches = make([]NicheIcon, 0, len(domain.GreyNiches))
	for _, niche := range domain.GreyNiches {
		row.GreyNiches = append(row.GreyNiches, NicheIcon{
			Niche:  niche,
			Label:  domain.NicheLabel(niche),
			Icon:   niche,
			Active: l.OffersNiche(niche),
		})
	}

	return row
}
