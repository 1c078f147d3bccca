package form

import (
	"strings"

	"github.com/totegamma/linksera/internal/domain"
)

const (
	fieldWordsMin     = "numberOfWordsMinWords"
	fieldWordsMax     = "numberOfWordsMaxWords"
	fieldLinksMin     = "numberOfLinksMin"
	fieldLinksMax     = "numberOfLinksMax"
	fieldNicheShared  = "greyNicheOfferSamePrice"
	sideGuestPosting  = "guestPosting"
	sideLinkInsertion = "linkInsertion"
)

// State is the field layout derived from the controlling fields of a form.
// It is recomputed from scratch for every change and keeps no history.
type State struct {
	// WordRange shows and requires the min/max word inputs.
	WordRange bool
	// LinkRange shows and requires the min/max link inputs.
	LinkRange bool
	// SharedNichePrice shows the single grey niche price and disables the per niche pairs.
	SharedNichePrice bool

	excluded map[string]bool
	required []string
}

// Evaluate derives the active field set from the current values.
func Evaluate(v Values) State {
	s := State{
		WordRange:        v.NumberOfWords == domain.WordsRange,
		LinkRange:        v.NumberOfLinks == domain.LinksRange,
		SharedNichePrice: v.GreyNiche == domain.GreyNicheSamePrice,
		excluded:         make(map[string]bool),
	}

	if s.WordRange {
		s.required = append(s.required, fieldWordsMin, fieldWordsMax)
	} else {
		s.excluded[fieldWordsMin] = true
		s.excluded[fieldWordsMax] = true
	}

	if s.LinkRange {
		s.required = append(s.required, fieldLinksMin, fieldLinksMax)
	} else {
		s.excluded[fieldLinksMin] = true
		s.excluded[fieldLinksMax] = true
	}

	if s.SharedNichePrice {
		for _, niche := range domain.GreyNiches {
			s.excluded[NicheFieldName(niche, sideGuestPosting)] = true
			s.excluded[NicheFieldName(niche, sideLinkInsertion)] = true
		}
	} else {
		s.excluded[fieldNicheShared] = true
	}

	return s
}

// Excluded reports whether a field is hidden or disabled and therefore not validated.
func (s State) Excluded(field string) bool {
	return s.excluded[field]
}

// Required lists the conditional fields that must be filled in.
func (s State) Required() []string {
	return s.required
}

// NicheFieldsDisabled reports whether the per niche inputs render disabled.
func (s State) NicheFieldsDisabled() bool {
	return s.SharedNichePrice
}

// AcceptPreconditions folds a submitted acknowledgement into the stored one.
// Acceptance is one-way: once true it stays true.
func AcceptPreconditions(stored, submitted bool) bool {
	return stored || submitted
}

// TabFor names the offer tab holding a field, or "" for fields outside the tabs.
func TabFor(field string) string {
	switch {
	case strings.HasPrefix(field, "normalOffer"):
		return domain.TabNormalOffer
	case strings.HasPrefix(field, "greyNiche"):
		return domain.TabGreyNicheOffer
	case strings.HasPrefix(field, "homepageLink"):
		return domain.TabHomepageLink
	}
	return ""
}

// ErrorTab picks the offer tab to show after a failed submit. The current tab
// stays when it holds an error; otherwise the first tab with an error wins.
func ErrorTab(current string, fields []domain.FieldError) string {
	first := ""
	for _, f := range fields {
		tab := TabFor(f.Field)
		if tab == "" {
			continue
		}
		if tab == current {
			return current
		}
		if first == "" {
			first = tab
		}
	}
	if first == "" {
		return current
	}
	return first
}
