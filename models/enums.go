package models

// PricingModels is the closed set of pricing models offered by the form,
// with "other" as the free-text fallback.
var PricingModels = []string{
	"freemium",
	"subscription",
	"one-time",
	"commission",
	"advertising",
	"contract",
	"retainer",
	"pay-per-use",
	"table-rental",
	"other",
}

// Industries is the closed set of industry categories offered by the form.
var Industries = []string{
	"saas",
	"ecommerce",
	"fintech",
	"healthtech",
	"edtech",
	"marketplace",
	"consumer",
	"b2b",
	"other",
}

// NormalizePricingModel maps a value onto the closed pricing model set,
// falling back to "other" for anything unrecognized. Empty input stays empty.
func NormalizePricingModel(value string) string {
	return normalize(value, PricingModels)
}

// NormalizeIndustry maps a value onto the closed industry set, falling back
// to "other" for anything unrecognized. Empty input stays empty.
func NormalizeIndustry(value string) string {
	return normalize(value, Industries)
}

func normalize(value string, allowed []string) string {
	if value == "" {
		return ""
	}
	for _, v := range allowed {
		if value == v {
			return value
		}
	}
	return "other"
}
