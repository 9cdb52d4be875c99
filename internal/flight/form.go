package flight

import (
	"strings"
	"time"
)

// SearchForm is the request body accepted by POST /v1/flights/search.
// Omitted fields take the same defaults the search form starts with.
type SearchForm struct {
	JourneyType   string `json:"journey_type" binding:"omitempty,oneof=OneWay RoundTrip MultiCity" example:"RoundTrip"`
	Departure     string `json:"departure" binding:"required" example:"DAC"`
	Arrival       string `json:"arrival" binding:"required" example:"CGP"`
	DepartureDate string `json:"departure_date" binding:"omitempty,datetime=2006-01-02" example:"2025-06-06"`
	ReturnDate    string `json:"return_date" binding:"omitempty,datetime=2006-01-02" example:"2025-06-13"`
	Adults        *int   `json:"adults" binding:"omitempty,min=1,max=9" example:"1"`
	Children      int    `json:"children" binding:"min=0,max=9" example:"0"`
	Infants       int    `json:"infants" binding:"min=0,max=9" example:"0"`
	CabinClass    string `json:"cabin_class" binding:"omitempty,oneof=Economy Premium-Economy Business First-Class" example:"Economy"`
}

// ToInput validates the form and assembles the immutable SearchInput.
// Airport codes are trimmed and upper-cased. A RoundTrip without a return
// date is rejected here rather than silently searched one-way.
func (f SearchForm) ToInput() (SearchInput, error) {
	in := SearchInput{
		JourneyType:      JourneyType(f.JourneyType),
		DepartureAirport: strings.ToUpper(strings.TrimSpace(f.Departure)),
		ArrivalAirport:   strings.ToUpper(strings.TrimSpace(f.Arrival)),
		Adults:           1,
		Children:         f.Children,
		Infants:          f.Infants,
		CabinClass:       CabinClass(f.CabinClass),
	}

	if in.JourneyType == "" {
		in.JourneyType = JourneyOneWay
	}
	if in.CabinClass == "" {
		in.CabinClass = CabinEconomy
	}
	if f.Adults != nil {
		in.Adults = *f.Adults
	}

	switch in.JourneyType {
	case JourneyOneWay, JourneyRoundTrip, JourneyMultiCity:
	default:
		return SearchInput{}, ErrUnknownJourneyType
	}

	switch in.CabinClass {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirstClass:
	default:
		return SearchInput{}, ErrUnknownCabinClass
	}

	if in.DepartureAirport == "" {
		return SearchInput{}, ErrMissingDeparture
	}
	if in.ArrivalAirport == "" {
		return SearchInput{}, ErrMissingArrival
	}
	if in.Adults < 1 || in.Adults > 9 || in.Children < 0 || in.Children > 9 || in.Infants < 0 || in.Infants > 9 {
		return SearchInput{}, ErrInvalidPassengers
	}

	var err error
	if in.DepartureDate, err = parseDate(f.DepartureDate); err != nil {
		return SearchInput{}, err
	}

	if in.JourneyType == JourneyRoundTrip {
		if strings.TrimSpace(f.ReturnDate) == "" {
			return SearchInput{}, ErrMissingReturnDate
		}
		if in.ReturnDate, err = parseDate(f.ReturnDate); err != nil {
			return SearchInput{}, err
		}
		if in.DepartureDate != nil && in.ReturnDate.Before(*in.DepartureDate) {
			return SearchInput{}, ErrReturnBeforeDeparture
		}
	}

	return in, nil
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &d, nil
}
