package form

import (
	"errors"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/totegamma/linksera/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		_, ok := parseNumber(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("nonnegative", func(fl validator.FieldLevel) bool {
		f, ok := parseNumber(fl.Field().String())
		return ok && f >= 0
	})
	// integer accepts whole numbers of any length; bounded rejects the ones an int cannot hold.
	_ = v.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		_, err := strconv.Atoi(fl.Field().String())
		return err == nil || errors.Is(err, strconv.ErrRange)
	})
	_ = v.RegisterValidation("bounded", func(fl validator.FieldLevel) bool {
		_, err := strconv.Atoi(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Field().String())
		return err == nil && n >= 1
	})

	return v
}

var fieldMessages = map[string]map[string]string{
	"websiteUrl": {
		"required": "Website URL is required",
		"url":      "Please enter a valid URL (e.g., https://beyondlabs.io)",
	},
	"language": {"required": "Please select language"},
	"country":  {"required": "Please select an option"},
	"description": {
		"required": "Description is required",
		"min":      "Minimum 350 Characters",
	},
	"homepageLinkDescription": {
		"required": "Description is required",
		"min":      "Minimum 350 Characters",
	},
}

var tagMessages = map[string]string{
	"required":    "This field is required",
	"oneof":       "Please select a valid option",
	"price":       "Price must be a number",
	"nonnegative": "Value cannot be negative",
	"integer":     "Must be a whole number",
	"bounded":     "Value is too large",
	"positive":    "Minimum must be greater than 0",
}

const msgRangeOrder = "Minimum must not exceed maximum"

func message(field, tag string) string {
	if m, ok := fieldMessages[field][tag]; ok {
		return m
	}
	if m, ok := tagMessages[tag]; ok {
		return m
	}
	return "Invalid value"
}

// fieldOrder is the order fields appear in on the form.
var fieldOrder = func() map[string]int {
	names := []string{
		"websiteUrl", "language", "country", "mainCategories", "description", "isOwner",
		"normalOfferGuestPosting", "normalOfferLinkInsertion",
		"greyNiche", fieldNicheShared,
	}
	for _, niche := range domain.GreyNiches {
		names = append(names, NicheFieldName(niche, sideGuestPosting), NicheFieldName(niche, sideLinkInsertion))
	}
	names = append(names,
		"homepageLinkPrice", "homepageLinkDescription",
		"isArticleIncluded", "numberOfWords", fieldWordsMin, fieldWordsMax,
		"doFollow", "linksAllowed", "taggingArticles",
		"numberOfLinks", fieldLinksMin, fieldLinksMax,
		"otherLinks", "articleDescription",
	)
	order := make(map[string]int, len(names))
	for i, n := range names {
		order[n] = i
	}
	return order
}()

type fieldErrors []domain.FieldError

func (e *fieldErrors) add(field, msg string) {
	if e.has(field) {
		return
	}
	*e = append(*e, domain.FieldError{Field: field, Message: msg})
}

func (e fieldErrors) has(field string) bool {
	for _, f := range e {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e fieldErrors) sorted() []domain.FieldError {
	out := append([]domain.FieldError(nil), e...)
	sort.SliceStable(out, func(i, j int) bool {
		return fieldOrder[out[i].Field] < fieldOrder[out[j].Field]
	})
	return out
}

// fieldName strips the root struct from a validator namespace,
// e.g. "Values.greyNicheOffers.crypto.guestPosting" -> "greyNicheOffers.crypto.guestPosting".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// Validate checks the values against the listing schema.
// On success it returns the normalized listing; otherwise a *domain.ValidationError
// holding every failing field. It never panics on user input.
func Validate(v Values) (domain.Listing, error) {
	state := Evaluate(v)
	var errs fieldErrors

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.Listing{}, err
		}
		for _, fe := range verrs {
			name := fieldName(fe)
			if state.Excluded(name) {
				continue
			}
			errs.add(name, message(name, fe.Tag()))
		}
	}

	inputs := map[string]string{
		fieldWordsMin: v.NumberOfWordsMinWords,
		fieldWordsMax: v.NumberOfWordsMaxWords,
		fieldLinksMin: v.NumberOfLinksMin,
		fieldLinksMax: v.NumberOfLinksMax,
	}
	for _, name := range state.Required() {
		if inputs[name] == "" {
			errs.add(name, message(name, "required"))
		}
	}

	if state.WordRange {
		checkRange(&errs, fieldWordsMin, v.NumberOfWordsMinWords, fieldWordsMax, v.NumberOfWordsMaxWords)
	}
	if state.LinkRange {
		checkRange(&errs, fieldLinksMin, v.NumberOfLinksMin, fieldLinksMax, v.NumberOfLinksMax)
	}

	if len(errs) > 0 {
		return domain.Listing{}, &domain.ValidationError{Fields: errs.sorted()}
	}

	return normalize(v, state), nil
}

// checkRange reports min > max on the max field once both bounds are valid.
func checkRange(errs *fieldErrors, minField, minValue, maxField, maxValue string) {
	if errs.has(minField) || errs.has(maxField) {
		return
	}
	lo, err := strconv.Atoi(minValue)
	if err != nil {
		return
	}
	hi, err := strconv.Atoi(maxValue)
	if err != nil {
		return
	}
	if lo > hi {
		errs.add(maxField, msgRangeOrder)
	}
}

func normalize(v Values, state State) domain.Listing {
	l := domain.Listing{
		AcceptPreconditions:      v.AcceptPreconditions,
		WebsiteURL:               v.WebsiteURL,
		Language:                 v.Language,
		Country:                  v.Country,
		MainCategories:           append([]string{}, v.MainCategories...),
		Description:              v.Description,
		IsOwner:                  v.IsOwner,
		NormalOfferGuestPosting:  parsePrice(v.NormalOfferGuestPosting),
		NormalOfferLinkInsertion: parsePrice(v.NormalOfferLinkInsertion),
		GreyNiche:                v.GreyNiche,
		HomepageLinkPrice:        parsePrice(v.HomepageLinkPrice),
		HomepageLinkDescription:  v.HomepageLinkDescription,
		IsArticleIncluded:        v.IsArticleIncluded,
		NumberOfWords:            v.NumberOfWords,
		DoFollow:                 v.DoFollow,
		LinksAllowed:             v.LinksAllowed,
		TaggingArticles:          v.TaggingArticles,
		NumberOfLinks:            v.NumberOfLinks,
		OtherLinks:               v.OtherLinks,
		ArticleDescription:       v.ArticleDescription,
	}

	if state.SharedNichePrice {
		l.GreyNicheOfferSamePrice = parsePrice(v.GreyNicheOfferSamePrice)
	} else {
		for _, niche := range domain.GreyNiches {
			src := v.GreyNicheOffers.Offer(niche)
			dst := l.GreyNicheOffers.Offer(niche)
			dst.GuestPosting = parsePrice(src.GuestPosting)
			dst.LinkInsertion = parsePrice(src.LinkInsertion)
		}
	}

	if state.WordRange {
		l.NumberOfWordsMinWords = parseCount(v.NumberOfWordsMinWords)
		l.NumberOfWordsMaxWords = parseCount(v.NumberOfWordsMaxWords)
	}
	if state.LinkRange {
		l.NumberOfLinksMin = parseCount(v.NumberOfLinksMin)
		l.NumberOfLinksMax = parseCount(v.NumberOfLinksMax)
	}

	return l
}

// parseNumber accepts any finite decimal or exponent notation, e.g. ".5", "5." or "1e3".
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parsePrice(s string) *float64 {
	f, ok := parseNumber(s)
	if !ok {
		return nil
	}
	return &f
}

func parseCount(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
