package domain

import "time"

// Listing is one website's offer on the marketplace.
type Listing struct {
	ID                  string `json:"id"`
	AcceptPreconditions bool   `json:"acceptPreconditions"`

	// Website details
	WebsiteURL     string   `json:"websiteUrl"`
	Language       string   `json:"language"`
	Country        string   `json:"country"`
	MainCategories []string `json:"mainCategories"`
	Description    string   `json:"description"`
	IsOwner        bool     `json:"isOwner"`

	// Normal offer
	NormalOfferGuestPosting  *float64 `json:"normalOfferGuestPosting"`
	NormalOfferLinkInsertion *float64 `json:"normalOfferLinkInsertion"`

	// Grey niche offer
	GreyNiche               string          `json:"greyNiche,omitempty"`
	GreyNicheOfferSamePrice *float64        `json:"greyNicheOfferSamePrice"`
	GreyNicheOffers         GreyNicheOffers `json:"greyNicheOffers"`

	// Homepage link
	HomepageLinkPrice       *float64 `json:"homepageLinkPrice"`
	HomepageLinkDescription string   `json:"homepageLinkDescription"`

	// Article specification
	IsArticleIncluded     string `json:"isArticleIncluded"`
	NumberOfWords         string `json:"numberOfWords"`
	NumberOfWordsMinWords *int   `json:"numberOfWordsMinWords"`
	NumberOfWordsMaxWords *int   `json:"numberOfWordsMaxWords"`
	DoFollow              string `json:"doFollow"`
	LinksAllowed          string `json:"linksAllowed"`
	TaggingArticles       string `json:"taggingArticles"`
	NumberOfLinks         string `json:"numberOfLinks"`
	NumberOfLinksMin      *int   `json:"numberOfLinksMin"`
	NumberOfLinksMax      *int   `json:"numberOfLinksMax"`
	OtherLinks            string `json:"otherLinks"`
	ArticleDescription    string `json:"articleDescription,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NicheOffer is the price pair for one grey niche.
type NicheOffer struct {
	GuestPosting  *float64 `json:"guestPosting"`
	LinkInsertion *float64 `json:"linkInsertion"`
}

// Priced reports whether either side of the pair carries a price.
func (o NicheOffer) Priced() bool {
	return o.GuestPosting != nil || o.LinkInsertion != nil
}

// GreyNicheOffers holds the independent price pairs of the six grey niches.
type GreyNicheOffers struct {
	Gambling NicheOffer `json:"gambling"`
	Crypto   NicheOffer `json:"crypto"`
	Adult    NicheOffer `json:"adult"`
	Casino   NicheOffer `json:"casino"`
	Betting  NicheOffer `json:"betting"`
	Forex    NicheOffer `json:"forex"`
}

// Offer returns the pair for the given niche key, or nil for an unknown key.
func (o *GreyNicheOffers) Offer(niche string) *NicheOffer {
	switch niche {
	case NicheGambling:
		return &o.Gambling
	case NicheCrypto:
		return &o.Crypto
	case NicheAdult:
		return &o.Adult
	case NicheCasino:
		return &o.Casino
	case NicheBetting:
		return &o.Betting
	case NicheForex:
		return &o.Forex
	default:
		return nil
	}
}

// SharedNichePrice reports whether one price applies to every grey niche.
func (l Listing) SharedNichePrice() bool {
	return l.GreyNiche == GreyNicheSamePrice
}

// OffersNiche reports whether the listing accepts content for the niche.
func (l Listing) OffersNiche(niche string) bool {
	if l.SharedNichePrice() {
		return l.GreyNicheOfferSamePrice != nil
	}
	offer := l.GreyNicheOffers.Offer(niche)
	return offer != nil && offer.Priced()
}

// PrimaryCategory returns the first category code, or "" when there is none.
func (l Listing) PrimaryCategory() string {
	if len(l.MainCategories) == 0 {
		return ""
	}
	return l.MainCategories[0]
}

// OtherCategories returns every category after the primary one.
func (l Listing) OtherCategories() []string {
	if len(l.MainCategories) < 2 {
		return nil
	}
	return l.MainCategories[1:]
}

// Clone returns a copy that shares no slices or pointers with l.
func (l Listing) Clone() Listing {
	l.MainCategories = append([]string(nil), l.MainCategories...)
	l.NormalOfferGuestPosting = clonePtr(l.NormalOfferGuestPosting)
	l.NormalOfferLinkInsertion = clonePtr(l.NormalOfferLinkInsertion)
	l.GreyNicheOfferSamePrice = clonePtr(l.GreyNicheOfferSamePrice)
	l.HomepageLinkPrice = clonePtr(l.HomepageLinkPrice)
	l.NumberOfWordsMinWords = clonePtr(l.NumberOfWordsMinWords)
	l.NumberOfWordsMaxWords = clonePtr(l.NumberOfWordsMaxWords)
	l.NumberOfLinksMin = clonePtr(l.NumberOfLinksMin)
	l.NumberOfLinksMax = clonePtr(l.NumberOfLinksMax)
	for _, niche := range GreyNiches {
		offer := l.GreyNicheOffers.Offer(niche)
		offer.GuestPosting = clonePtr(offer.GuestPosting)
		offer.LinkInsertion = clonePtr(offer.LinkInsertion)
	}
	return l
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
