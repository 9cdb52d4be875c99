package flight

import "time"

const (
	airportType = "AIRPORT"
	dateLayout  = "2006-01-02"

	anyOption   = "any"
	allSupplier = "all"
	language    = "en"
	shortRef    = "12121212121"
)

// BuildSearchRequest turns a search input into the upstream request payload.
//
// The outbound segment is always present. A return segment, with the
// airports swapped, is appended only for RoundTrip searches that carry a
// return date; MultiCity is searched with the one-way shape. Input values are
// not validated here.
func BuildSearchRequest(in SearchInput) SearchPayload {
	segments := []Segment{
		newSegment(in.DepartureAirport, in.ArrivalAirport, in.DepartureDate),
	}

	if in.JourneyType == JourneyRoundTrip && in.ReturnDate != nil {
		segments = append(segments, newSegment(in.ArrivalAirport, in.DepartureAirport, in.ReturnDate))
	}

	return SearchPayload{
		JourneyType:         in.JourneyType,
		Segment:             segments,
		TravelersAdult:      in.Adults,
		TravelersChild:      in.Children,
		TravelersChildAge:   []int{},
		TravelersInfants:    in.Infants,
		TravelersInfantsAge: []int{},
		PreferredCarrier:    []string{},
		NonStopFlight:       anyOption,
		BaggageOption:       anyOption,
		BookingClass:        in.CabinClass,
		SupplierUID:         allSupplier,
		PartnerID:           "",
		Language:            language,
		ShortRef:            shortRef,
		TeamProfile: []TeamMember{
			{MemberID: "1", PaxType: "ADT"},
		},
	}
}

func newSegment(from, to string, date *time.Time) Segment {
	return Segment{
		DepartureAirportType: airportType,
		DepartureAirport:     from,
		ArrivalAirportType:   airportType,
		ArrivalAirport:       to,
		DepartureDate:        formatDate(date),
	}
}

// formatDate renders a calendar date as YYYY-MM-DD; a nil date is "".
func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(dateLayout)
}
