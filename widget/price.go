package widget

import "strconv"

// PRICE_ON_REQUEST_LABEL is shown when a listing carries no usable price bound.
const PRICE_ON_REQUEST_LABEL = "Price on request"

// FormatPriceRange renders the popup price line. Bounds of zero or less count
// as absent; equal bounds collapse to a single price.
func FormatPriceRange(priceMin, priceMax float64) string {
	hasMin := priceMin > 0
	hasMax := priceMax > 0

	switch {
	case hasMin && hasMax && priceMin != priceMax:
		return "$" + formatAmount(priceMin) + "-$" + formatAmount(priceMax)
	case hasMax:
		return "$" + formatAmount(priceMax)
	case hasMin:
		return "$" + formatAmount(priceMin)
	default:
		return PRICE_ON_REQUEST_LABEL
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
