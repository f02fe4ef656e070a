package models

import "fmt"
import "net/url"
import "strconv"

// NearbyQuery mirrors the nearby-listings API's query args. Use zero-values
// to omit the optional ones.
type NearbyQuery struct {
	Lat      float64 // required
	Lng      float64 // required
	RadiusKm float64 // required (kilometers)
	Limit    *int    // optional
}

// ParseNearbyQuery reads the query args, failing on the first missing or
// non-numeric required argument.
func ParseNearbyQuery(vals url.Values) (NearbyQuery, error) {
	var q NearbyQuery
	var err error

	if q.Lat, err = parseArgFloat64(vals, "lat"); err != nil {
		return q, err
	}
	if q.Lng, err = parseArgFloat64(vals, "lng"); err != nil {
		return q, err
	}
	if q.RadiusKm, err = parseArgFloat64(vals, "radius"); err != nil {
		return q, err
	}
	if v := vals.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, fmt.Errorf("invalid argument limit")
		}
		q.Limit = &n
	}
	return q, nil
}

func (q NearbyQuery) ToValues() url.Values {
	v := url.Values{}
	v.Set("lat", ftoa(q.Lat))
	v.Set("lng", ftoa(q.Lng))
	v.Set("radius", ftoa(q.RadiusKm))
	if q.Limit != nil {
		v.Set("limit", itoa(*q.Limit))
	}
	return v
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid argument %s", name)
	}
	return f, nil
}

// lightweight helpers (no fmt.Sprintf allocations for ints/floats)
func itoa(i int) string     { return strconv.Itoa(i) }
func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
