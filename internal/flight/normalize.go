package flight

import (
	"fmt"
	"strings"
	"time"
)

const (
	notAvailable        = "N/A"
	directLabel         = "Direct"
	fallbackCarrierAbbr = "AL"
	currencyPrefix      = "BDT "

	// EmptyResultMessage is shown when a successful search has no itineraries.
	EmptyResultMessage = "No flight results found. Please try different search parameters."
)

// timestamp layouts seen from the upstream, most specific first
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"15:04:05",
	"15:04",
}

// Normalize extracts display-ready itineraries from a search envelope.
// Failed envelopes and responses without a flight list yield nil. Item
// order follows the upstream response.
func Normalize(env Envelope) []Itinerary {
	if env.Error || env.Data == nil || len(env.Data.Data) == 0 {
		return nil
	}

	carrierBaseURL := ""
	if res := env.Data.Resources; res.Valid && res.Value.BaseURL.Valid {
		carrierBaseURL = res.Value.BaseURL.Value.Carrier.Value
	}

	itineraries := make([]Itinerary, 0, len(env.Data.Data))
	for _, item := range env.Data.Data {
		itineraries = append(itineraries, normalizeItem(item, carrierBaseURL))
	}
	return itineraries
}

func normalizeItem(item RawFlightItem, carrierBaseURL string) Itinerary {
	it := Itinerary{
		JourneyType: item.JourneyType.Value,
		Groups:      make([]FlightGroup, 0, len(item.FlightGroup)),
	}

	if item.Price.Valid && item.Price.Value.Total.Valid {
		it.Price = currencyPrefix + item.Price.Value.Total.Value
	}

	if len(item.FlightGroup) > 0 && len(item.FlightGroup[0].Routes) > 0 {
		first := item.FlightGroup[0].Routes[0]
		it.Summary = first.Origin.Value + " to " + first.Destination.Value
	}

	for _, group := range item.FlightGroup {
		routes := make([]Route, 0, len(group.Routes))
		for _, route := range group.Routes {
			routes = append(routes, normalizeRoute(route, group, carrierBaseURL))
		}
		it.Groups = append(it.Groups, FlightGroup{Routes: routes})
	}
	return it
}

func normalizeRoute(route RawRoute, group RawFlightGroup, carrierBaseURL string) Route {
	r := Route{
		Origin:        route.Origin.Or(notAvailable),
		Destination:   route.Destination.Or(notAvailable),
		DepartureTime: formatClock(route.DepartureTime),
		ArrivalTime:   formatClock(route.ArrivalTime),
		FlightTime:    route.FlightTime.Or(group.FlightTime.Or(notAvailable)),
		Stops:         stopsLabel(group.NoOfStops),
	}

	if route.Marketing.Valid {
		r.Carrier = normalizeCarrier(route.Marketing.Value, carrierBaseURL)
	}
	return r
}

func normalizeCarrier(m RawMarketing, carrierBaseURL string) *Carrier {
	c := &Carrier{
		Name:         m.CarrierName.Or(m.Carrier.Or(notAvailable)),
		FlightNumber: m.FlightNumber.Or(notAvailable),
		Abbreviation: fallbackCarrierAbbr,
	}

	if code := []rune(m.Carrier.Value); len(code) > 0 {
		c.Abbreviation = string(code[:min(2, len(code))])
	}

	if carrierBaseURL != "" && m.CarrierLogo.Valid {
		c.LogoURL = strings.TrimRight(carrierBaseURL, "/") + "/" + strings.TrimLeft(m.CarrierLogo.Value, "/")
	}
	return c
}

// stopsLabel renders 0 as "Direct" and N as "N Stop(s)".
func stopsLabel(stops OptInt) string {
	switch {
	case !stops.Valid:
		return notAvailable
	case stops.Value == 0:
		return directLabel
	default:
		return fmt.Sprintf("%d Stop(s)", stops.Value)
	}
}

// formatClock renders the wall-clock time of an upstream timestamp as HH:MM,
// in the timestamp's own offset.
func formatClock(ts OptString) string {
	if !ts.Valid {
		return notAvailable
	}

	value := strings.TrimSpace(ts.Value)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04")
		}
	}
	return notAvailable
}
