package form

import (
	"testing"

	"github.com/totegamma/linksera/internal/domain"
)

func TestEvaluateDefaults(t *testing.T) {
	s := Evaluate(Defaults())

	if s.WordRange || s.LinkRange || s.SharedNichePrice {
		t.Fatalf("expected every conditional group hidden, got %+v", s)
	}
	for _, field := range []string{fieldWordsMin, fieldWordsMax, fieldLinksMin, fieldLinksMax, fieldNicheShared} {
		if !s.Excluded(field) {
			t.Errorf("expected %s to be excluded", field)
		}
	}
	if s.Excluded(NicheFieldName(domain.NicheCasino, sideGuestPosting)) {
		t.Errorf("expected per niche inputs to be active")
	}
	if len(s.Required()) != 0 {
		t.Errorf("expected no conditional required fields, got %v", s.Required())
	}
}

func TestEvaluateExplicitRanges(t *testing.T) {
	v := Defaults()
	v.NumberOfWords = domain.WordsRange
	v.NumberOfLinks = domain.LinksRange

	s := Evaluate(v)
	if !s.WordRange || !s.LinkRange {
		t.Fatalf("expected both ranges shown, got %+v", s)
	}
	if s.Excluded(fieldWordsMin) || s.Excluded(fieldLinksMax) {
		t.Fatalf("expected range inputs to be validated")
	}
	if len(s.Required()) != 4 {
		t.Fatalf("expected 4 required range inputs, got %v", s.Required())
	}
}

func TestEvaluateSharedNichePrice(t *testing.T) {
	v := Defaults()
	v.GreyNiche = domain.GreyNicheSamePrice

	s := Evaluate(v)
	if !s.NicheFieldsDisabled() {
		t.Fatalf("expected niche inputs disabled")
	}
	if s.Excluded(fieldNicheShared) {
		t.Fatalf("expected shared price to be active")
	}
	for _, niche := range domain.GreyNiches {
		if !s.Excluded(NicheFieldName(niche, sideLinkInsertion)) {
			t.Errorf("expected %s link insertion excluded", niche)
		}
	}
}

func TestEvaluateHasNoMemory(t *testing.T) {
	v := Defaults()
	v.NumberOfWords = domain.WordsRange
	_ = Evaluate(v)

	v.NumberOfWords = domain.WordsNotLimited
	if s := Evaluate(v); s.WordRange {
		t.Fatalf("expected word range hidden after switching back")
	}
}

func TestAcceptPreconditionsIsOneWay(t *testing.T) {
	tests := []struct {
		stored, submitted, want bool
	}{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, true},
	}
	for _, tt := range tests {
		if got := AcceptPreconditions(tt.stored, tt.submitted); got != tt.want {
			t.Errorf("AcceptPreconditions(%v, %v) = %v; want %v", tt.stored, tt.submitted, got, tt.want)
		}
	}
}

func TestTabFor(t *testing.T) {
	tests := []struct {
		field, want string
	}{
		{"normalOfferGuestPosting", domain.TabNormalOffer},
		{"greyNicheOfferSamePrice", domain.TabGreyNicheOffer},
		{NicheFieldName(domain.NicheForex, sideGuestPosting), domain.TabGreyNicheOffer},
		{"homepageLinkDescription", domain.TabHomepageLink},
		{"websiteUrl", ""},
	}
	for _, tt := range tests {
		if got := TabFor(tt.field); got != tt.want {
			t.Errorf("TabFor(%q) = %q; want %q", tt.field, got, tt.want)
		}
	}
}

func TestErrorTab(t *testing.T) {
	errs := func(fields ...string) []domain.FieldError {
		out := make([]domain.FieldError, 0, len(fields))
		for _, f := range fields {
			out = append(out, domain.FieldError{Field: f, Message: "bad"})
		}
		return out
	}

	tests := []struct {
		current string
		fields  []domain.FieldError
		want    string
	}{
		{domain.TabNormalOffer, errs("websiteUrl", "description"), domain.TabNormalOffer},
		{domain.TabNormalOffer, errs("websiteUrl", "homepageLinkDescription"), domain.TabHomepageLink},
		{domain.TabNormalOffer, errs("description", NicheFieldName(domain.NicheCrypto, sideGuestPosting), "homepageLinkPrice"), domain.TabGreyNicheOffer},
		{domain.TabHomepageLink, errs("normalOfferGuestPosting", "homepageLinkPrice"), domain.TabHomepageLink},
		{domain.TabGreyNicheOffer, errs("normalOfferLinkInsertion"), domain.TabNormalOffer},
	}
	for _, tt := range tests {
		if got := ErrorTab(tt.current, tt.fields); got != tt.want {
			t.Errorf("ErrorTab(%q, %v) = %q; want %q", tt.current, tt.fields, got, tt.want)
		}
	}
}
