package domain

const (
	Yes = "yes"
	No  = "no"
)

// numberOfWords values. "no" switches on the explicit word range.
const (
	WordsNotLimited = "not-limited"
	WordsRange      = "no"
)

// numberOfLinks values. "no" switches on the explicit link range.
const (
	LinksNotLimited = "not-tag"
	LinksRange      = "no"
)

const (
	LinksAllowedBrand          = "brand-links"
	LinksAllowedBrandedGeneric = "branded-generic"
	LinksAllowedMixed          = "mixed"
	LinksAllowedAll            = "all"
)

const (
	TaggingNotTag      = "not-tag"
	TaggingTaggedOnly  = "tagged-only"
	TaggingTagArticles = "tag-articles"
	TaggingAll         = "all"
)

const GreyNicheSamePrice = "same-price"

const (
	NicheGambling = "gambling"
	NicheCrypto   = "crypto"
	NicheAdult    = "adult"
	NicheCasino   = "casino"
	NicheBetting  = "betting"
	NicheForex    = "forex"
)

// GreyNiches lists the niche keys in display order.
var GreyNiches = []string{
	NicheGambling,
	NicheCrypto,
	NicheAdult,
	NicheCasino,
	NicheBetting,
	NicheForex,
}

// Offer tabs of the listing form.
const (
	TabNormalOffer    = "normal-offer"
	TabGreyNicheOffer = "grey-niche-offer"
	TabHomepageLink   = "homepage-link"
)

// NotAvailable is shown when a coded value cannot be resolved.
const NotAvailable = "N/A"
