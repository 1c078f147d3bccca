package domain

import "strings"

// Option is a coded value with its display label.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Language is a selectable primary language.
type Language struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	FlagCode string `json:"flagCode"`
}

// Country is a selectable majority-traffic country.
type Country struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

// Flag renders the country's flag as a pair of regional indicator symbols.
func (c Country) Flag() string {
	return FlagGlyph(c.Code)
}

// FlagGlyph turns a two letter ISO code into its emoji flag.
// Anything that is not two ASCII letters yields "".
func FlagGlyph(code string) string {
	code = strings.ToUpper(code)
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < 2; i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return ""
		}
		b.WriteRune(rune(0x1F1E6 + int(c-'A')))
	}
	return b.String()
}

var Languages = []Language{
	{Label: "English UK", Value: "en-GB", FlagCode: "GB"},
	{Label: "French", Value: "fr", FlagCode: "FR"},
	{Label: "German", Value: "de", FlagCode: "DE"},
	{Label: "English US", Value: "en-US", FlagCode: "US"},
	{Label: "Hindi", Value: "hi", FlagCode: "IN"},
}

var Countries = []Country{
	{Label: "Australia", Code: "AU"},
	{Label: "Austria", Code: "AT"},
	{Label: "Belgium", Code: "BE"},
	{Label: "Brazil", Code: "BR"},
	{Label: "Canada", Code: "CA"},
	{Label: "Denmark", Code: "DK"},
	{Label: "Finland", Code: "FI"},
	{Label: "France", Code: "FR"},
	{Label: "Germany", Code: "DE"},
	{Label: "India", Code: "IN"},
	{Label: "Ireland", Code: "IE"},
	{Label: "Italy", Code: "IT"},
	{Label: "Japan", Code: "JP"},
	{Label: "Mexico", Code: "MX"},
	{Label: "Netherlands", Code: "NL"},
	{Label: "New Zealand", Code: "NZ"},
	{Label: "Norway", Code: "NO"},
	{Label: "Poland", Code: "PL"},
	{Label: "Portugal", Code: "PT"},
	{Label: "Singapore", Code: "SG"},
	{Label: "South Africa", Code: "ZA"},
	{Label: "Spain", Code: "ES"},
	{Label: "Sweden", Code: "SE"},
	{Label: "Switzerland", Code: "CH"},
	{Label: "United Arab Emirates", Code: "AE"},
	{Label: "United Kingdom", Code: "GB"},
	{Label: "United States", Code: "US"},
}

var Categories = []Option{
	{Label: "Animals / Pets", Value: "animals-pets"},
	{Label: "Education", Value: "education"},
	{Label: "Food", Value: "food"},
	{Label: "Lifestyle", Value: "lifestyle"},
	{Label: "Politics", Value: "politics"},
	{Label: "Art", Value: "art"},
	{Label: "Energy & Solar Energy", Value: "energy-solar-energy"},
	{Label: "Gambling", Value: "gambling"},
	{Label: "Marijuana / Vaporizers", Value: "marijuana-vaporizers"},
	{Label: "Real Estate", Value: "real-estate"},
	{Label: "Auto", Value: "auto"},
	{Label: "Entertainment & Music", Value: "entertainment-music"},
	{Label: "Gaming", Value: "gaming"},
	{Label: "Marketing", Value: "marketing"},
	{Label: "Media", Value: "media"},
	{Label: "Beauty", Value: "beauty"},
	{Label: "Environment", Value: "environment"},
	{Label: "General", Value: "general"},
	{Label: "Medical", Value: "medical"},
	{Label: "Environment Safety", Value: "environment-safety"},
	{Label: "Blogging", Value: "blogging"},
	{Label: "Events", Value: "events"},
	{Label: "Health & Fitness", Value: "health-fitness"},
	{Label: "News", Value: "news"},
	{Label: "SEO", Value: "seo"},
	{Label: "Business / Entrepreneur", Value: "business-entrepreneur"},
	{Label: "Family / Parenting", Value: "family-parenting"},
	{Label: "Home & Garden", Value: "home-garden"},
	{Label: "Other", Value: "other"},
	{Label: "Sex & Adult", Value: "sex-adult"},
	{Label: "Indoor", Value: "indoor"},
	{Label: "Fashion", Value: "fashion"},
	{Label: "Indian Sites", Value: "indian-sites"},
	{Label: "Outdoors", Value: "outdoors"},
	{Label: "Shopping", Value: "shopping"},
	{Label: "Directory", Value: "directory"},
	{Label: "Advisory", Value: "advisory"},
	{Label: "Legal", Value: "legal"},
	{Label: "Photography", Value: "photography"},
	{Label: "Finance", Value: "finance"},
}

var NicheLabels = []Option{
	{Label: "Gambling", Value: NicheGambling},
	{Label: "Crypto", Value: NicheCrypto},
	{Label: "Adult", Value: NicheAdult},
	{Label: "Casino", Value: NicheCasino},
	{Label: "Betting", Value: NicheBetting},
	{Label: "Forex", Value: NicheForex},
}

var LinksAllowedOptions = []Option{
	{Label: "Only brand links, URL, navigational, graphic links.", Value: LinksAllowedBrand},
	{Label: "Only branded and generic links.", Value: LinksAllowedBrandedGeneric},
	{Label: "Also mixed links (partly exact match anchors).", Value: LinksAllowedMixed},
	{Label: "All links, including exact match anchors.", Value: LinksAllowedAll},
}

var TaggingOptions = []Option{
	{Label: "We do not tag paid articles.", Value: TaggingNotTag},
	{Label: "Articles are tagged only at the advertiser's request.", Value: TaggingTaggedOnly},
	{Label: `We always tag articles: "Sponsored article".`, Value: TaggingTagArticles},
	{Label: "All links, including exact match anchors.", Value: TaggingAll},
}

var OfferTabs = []Option{
	{Label: "Normal offer", Value: TabNormalOffer},
	{Label: "Grey Niche offer", Value: TabGreyNicheOffer},
	{Label: "Homepage link", Value: TabHomepageLink},
}

func LookupLanguage(value string) (Language, bool) {
	for _, l := range Languages {
		if l.Value == value {
			return l, true
		}
	}
	return Language{}, false
}

func LookupCountry(code string) (Country, bool) {
	for _, c := range Countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

func LookupCategory(value string) (Option, bool) {
	for _, c := range Categories {
		if c.Value == value {
			return c, true
		}
	}
	return Option{}, false
}

// CategoryLabel resolves a category code, falling back to the code itself.
func CategoryLabel(value string) string {
	if c, ok := LookupCategory(value); ok {
		return c.Label
	}
	return value
}

// NicheLabel resolves a grey niche key, falling back to the key itself.
func NicheLabel(niche string) string {
	for _, n := range NicheLabels {
		if n.Value == niche {
			return n.Label
		}
	}
	return niche
}
