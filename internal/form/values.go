package form

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/totegamma/linksera/internal/domain"
)

// Values is the working copy of a listing as typed into the form.
// Numbers stay strings until the listing is accepted so bad input can be reported
// instead of silently turning into zero.
type Values struct {
	Tab                 string `form:"tab"`
	AcceptPreconditions bool   `form:"acceptPreconditions"`

	WebsiteURL     string   `form:"websiteUrl" validate:"required,url"`
	Language       string   `form:"language" validate:"required"`
	Country        string   `form:"country" validate:"required"`
	MainCategories []string `form:"mainCategories"`
	Description    string   `form:"description" validate:"required,min=350"`
	IsOwner        bool     `form:"isOwner"`

	NormalOfferGuestPosting  string `form:"normalOfferGuestPosting" validate:"omitempty,price,nonnegative"`
	NormalOfferLinkInsertion string `form:"normalOfferLinkInsertion" validate:"omitempty,price,nonnegative"`

	GreyNiche               string            `form:"greyNiche" validate:"omitempty,oneof=same-price"`
	GreyNicheOfferSamePrice string            `form:"greyNicheOfferSamePrice" validate:"omitempty,price,nonnegative"`
	GreyNicheOffers         NicheOffersValues `form:"greyNicheOffers"`

	HomepageLinkPrice       string `form:"homepageLinkPrice" validate:"omitempty,price,nonnegative"`
	HomepageLinkDescription string `form:"homepageLinkDescription" validate:"required,min=350"`

	IsArticleIncluded     string `form:"isArticleIncluded" validate:"required,oneof=yes no"`
	NumberOfWords         string `form:"numberOfWords" validate:"required,oneof=not-limited no"`
	NumberOfWordsMinWords string `form:"numberOfWordsMinWords" validate:"omitempty,integer,bounded,positive"`
	NumberOfWordsMaxWords string `form:"numberOfWordsMaxWords" validate:"omitempty,integer,bounded,positive"`
	DoFollow              string `form:"doFollow" validate:"required,oneof=yes no"`
	LinksAllowed          string `form:"linksAllowed" validate:"required,oneof=brand-links branded-generic mixed all"`
	TaggingArticles       string `form:"taggingArticles" validate:"required,oneof=not-tag tagged-only tag-articles all"`
	NumberOfLinks         string `form:"numberOfLinks" validate:"required,oneof=not-tag no"`
	NumberOfLinksMin      string `form:"numberOfLinksMin" validate:"omitempty,integer,bounded,positive"`
	NumberOfLinksMax      string `form:"numberOfLinksMax" validate:"omitempty,integer,bounded,positive"`
	OtherLinks            string `form:"otherLinks" validate:"required,oneof=yes no"`
	ArticleDescription    string `form:"articleDescription"`
}

type NicheValues struct {
	GuestPosting  string `form:"guestPosting" validate:"omitempty,price,nonnegative"`
	LinkInsertion string `form:"linkInsertion" validate:"omitempty,price,nonnegative"`
}

type NicheOffersValues struct {
	Gambling NicheValues `form:"gambling"`
	Crypto   NicheValues `form:"crypto"`
	Adult    NicheValues `form:"adult"`
	Casino   NicheValues `form:"casino"`
	Betting  NicheValues `form:"betting"`
	Forex    NicheValues `form:"forex"`
}

// Offer returns the price inputs of a niche, or nil for an unknown key.
func (o *NicheOffersValues) Offer(niche string) *NicheValues {
	switch niche {
	case domain.NicheGambling:
		return &o.Gambling
	case domain.NicheCrypto:
		return &o.Crypto
	case domain.NicheAdult:
		return &o.Adult
	case domain.NicheCasino:
		return &o.Casino
	case domain.NicheBetting:
		return &o.Betting
	case domain.NicheForex:
		return &o.Forex
	default:
		return nil
	}
}

// NicheFieldName is the input name of one side of a niche price pair.
func NicheFieldName(niche, side string) string {
	return "greyNicheOffers." + niche + "." + side
}

// Defaults returns the values a new listing form starts with.
func Defaults() Values {
	return Values{
		Tab:                      domain.TabNormalOffer,
		Language:                 "en-GB",
		Country:                  "US",
		MainCategories:           []string{"art", "energy-solar-energy", "gaming"},
		NormalOfferGuestPosting:  "54",
		NormalOfferLinkInsertion: "54",
		HomepageLinkPrice:        "54",
		IsArticleIncluded:        domain.Yes,
		NumberOfWords:            domain.WordsNotLimited,
		DoFollow:                 domain.Yes,
		LinksAllowed:             domain.LinksAllowedBrand,
		TaggingArticles:          domain.TaggingNotTag,
		NumberOfLinks:            domain.LinksNotLimited,
		OtherLinks:               domain.Yes,
	}
}

// FromValues reads a submitted HTML form.
func FromValues(in url.Values) Values {
	get := func(key string) string {
		return strings.TrimSpace(in.Get(key))
	}

	v := Values{
		Tab:                      get("tab"),
		AcceptPreconditions:      truthy(get("acceptPreconditions")),
		WebsiteURL:               get("websiteUrl"),
		Language:                 get("language"),
		Country:                  get("country"),
		MainCategories:           compact(in["mainCategories"]),
		Description:              in.Get("description"),
		IsOwner:                  truthy(get("isOwner")),
		NormalOfferGuestPosting:  get("normalOfferGuestPosting"),
		NormalOfferLinkInsertion: get("normalOfferLinkInsertion"),
		GreyNiche:                get("greyNiche"),
		GreyNicheOfferSamePrice:  get("greyNicheOfferSamePrice"),
		HomepageLinkPrice:        get("homepageLinkPrice"),
		HomepageLinkDescription:  in.Get("homepageLinkDescription"),
		IsArticleIncluded:        get("isArticleIncluded"),
		NumberOfWords:            get("numberOfWords"),
		NumberOfWordsMinWords:    get("numberOfWordsMinWords"),
		NumberOfWordsMaxWords:    get("numberOfWordsMaxWords"),
		DoFollow:                 get("doFollow"),
		LinksAllowed:             get("linksAllowed"),
		TaggingArticles:          get("taggingArticles"),
		NumberOfLinks:            get("numberOfLinks"),
		NumberOfLinksMin:         get("numberOfLinksMin"),
		NumberOfLinksMax:         get("numberOfLinksMax"),
		OtherLinks:               get("otherLinks"),
		ArticleDescription:       in.Get("articleDescription"),
	}
	for _, niche := range domain.GreyNiches {
		offer := v.GreyNicheOffers.Offer(niche)
		offer.GuestPosting = get(NicheFieldName(niche, "guestPosting"))
		offer.LinkInsertion = get(NicheFieldName(niche, "linkInsertion"))
	}
	if v.Tab == "" {
		v.Tab = domain.TabNormalOffer
	}
	return v
}

// FromListing turns a stored listing back into editable values.
func FromListing(l domain.Listing) Values {
	v := Values{
		Tab:                      domain.TabNormalOffer,
		AcceptPreconditions:      l.AcceptPreconditions,
		WebsiteURL:               l.WebsiteURL,
		Language:                 l.Language,
		Country:                  l.Country,
		MainCategories:           append([]string(nil), l.MainCategories...),
		Description:              l.Description,
		IsOwner:                  l.IsOwner,
		NormalOfferGuestPosting:  formatPrice(l.NormalOfferGuestPosting),
		NormalOfferLinkInsertion: formatPrice(l.NormalOfferLinkInsertion),
		GreyNiche:                l.GreyNiche,
		GreyNicheOfferSamePrice:  formatPrice(l.GreyNicheOfferSamePrice),
		HomepageLinkPrice:        formatPrice(l.HomepageLinkPrice),
		HomepageLinkDescription:  l.HomepageLinkDescription,
		IsArticleIncluded:        l.IsArticleIncluded,
		NumberOfWords:            l.NumberOfWords,
		NumberOfWordsMinWords:    formatCount(l.NumberOfWordsMinWords),
		NumberOfWordsMaxWords:    formatCount(l.NumberOfWordsMaxWords),
		DoFollow:                 l.DoFollow,
		LinksAllowed:             l.LinksAllowed,
		TaggingArticles:          l.TaggingArticles,
		NumberOfLinks:            l.NumberOfLinks,
		NumberOfLinksMin:         formatCount(l.NumberOfLinksMin),
		NumberOfLinksMax:         formatCount(l.NumberOfLinksMax),
		OtherLinks:               l.OtherLinks,
		ArticleDescription:       l.ArticleDescription,
	}
	for _, niche := range domain.GreyNiches {
		src := l.GreyNicheOffers.Offer(niche)
		dst := v.GreyNicheOffers.Offer(niche)
		dst.GuestPosting = formatPrice(src.GuestPosting)
		dst.LinkInsertion = formatPrice(src.LinkInsertion)
	}
	return v
}

// HasCategory is used by the templates to mark selected categories.
func (v Values) HasCategory(value string) bool {
	for _, c := range v.MainCategories {
		if c == value {
			return true
		}
	}
	return false
}

func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// compact drops blanks and duplicates while keeping the first occurrence order.
func compact(in []string) []string {
	var out []string
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func formatPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func formatCount(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
