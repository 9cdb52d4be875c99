package flight

import (
	"encoding/json"
	"time"
)

type JourneyType string

const (
	JourneyOneWay    JourneyType = "OneWay"
	JourneyRoundTrip JourneyType = "RoundTrip"
	// JourneyMultiCity is accepted but searched with the one-way shape.
	JourneyMultiCity JourneyType = "MultiCity"
)

// CabinClass values are the exact booking_class tokens the upstream expects.
type CabinClass string

const (
	CabinEconomy        CabinClass = "Economy"
	CabinPremiumEconomy CabinClass = "Premium-Economy"
	CabinBusiness       CabinClass = "Business"
	CabinFirstClass     CabinClass = "First-Class"
)

// SearchInput is the validated, immutable set of values a search is built from.
type SearchInput struct {
	JourneyType      JourneyType
	DepartureAirport string
	ArrivalAirport   string
	DepartureDate    *time.Time
	ReturnDate       *time.Time
	Adults           int
	Children         int
	Infants          int
	CabinClass       CabinClass
}

// SearchPayload is the body POSTed to the upstream /flight/search endpoint.
type SearchPayload struct {
	JourneyType         JourneyType  `json:"journey_type"`
	Segment             []Segment    `json:"segment"`
	TravelersAdult      int          `json:"travelers_adult"`
	TravelersChild      int          `json:"travelers_child"`
	TravelersChildAge   []int        `json:"travelers_child_age"`
	TravelersInfants    int          `json:"travelers_infants"`
	TravelersInfantsAge []int        `json:"travelers_infants_age"`
	PreferredCarrier    []string     `json:"preferred_carrier"`
	NonStopFlight       string       `json:"non_stop_flight"`
	BaggageOption       string       `json:"baggage_option"`
	BookingClass        CabinClass   `json:"booking_class"`
	SupplierUID         string       `json:"supplier_uid"`
	PartnerID           string       `json:"partner_id"`
	Language            string       `json:"language"`
	ShortRef            string       `json:"short_ref"`
	TeamProfile         []TeamMember `json:"team_profile"`
}

type Segment struct {
	DepartureAirportType string `json:"departure_airport_type"`
	DepartureAirport     string `json:"departure_airport"`
	ArrivalAirportType   string `json:"arrival_airport_type"`
	ArrivalAirport       string `json:"arrival_airport"`
	DepartureDate        string `json:"departure_date"`
}

type TeamMember struct {
	MemberID string `json:"member_id"`
	PaxType  string `json:"pax_type"`
}

// Envelope is the outcome of one upstream call. Transport failures are
// reported here with Error set; they are never returned as Go errors.
type Envelope struct {
	Error   bool         `json:"error"`
	Message string       `json:"message"`
	Data    *APIResponse `json:"data,omitempty"`
}

// APIResponse is the upstream search response. Every nested field is
// optional; decoding never fails on shape mismatches, it leaves the
// offending field absent. Raw keeps the body verbatim for diagnostics.
type APIResponse struct {
	Data      List[RawFlightItem]  `json:"data"`
	Resources Object[RawResources] `json:"resources"`
	Raw       json.RawMessage      `json:"-"`
}

type RawResources struct {
	BaseURL Object[RawBaseURL] `json:"base_url"`
}

type RawBaseURL struct {
	Carrier OptString `json:"carrier"`
}

type RawFlightItem struct {
	JourneyType OptString            `json:"journey_type"`
	Price       Object[RawPrice]     `json:"price"`
	FlightGroup List[RawFlightGroup] `json:"flight_group"`
}

type RawPrice struct {
	Total OptString `json:"total"`
}

type RawFlightGroup struct {
	Routes     List[RawRoute] `json:"routes"`
	NoOfStops  OptInt         `json:"no_of_stops"`
	FlightTime OptString      `json:"flight_time"`
}

type RawRoute struct {
	Origin        OptString            `json:"origin"`
	Destination   OptString            `json:"destination"`
	DepartureTime OptString            `json:"departure_time"`
	ArrivalTime   OptString            `json:"arrival_time"`
	FlightTime    OptString            `json:"flight_time"`
	Marketing     Object[RawMarketing] `json:"marketing"`
}

type RawMarketing struct {
	Carrier      OptString `json:"carrier"`
	CarrierName  OptString `json:"carrier_name"`
	CarrierLogo  OptString `json:"carrier_logo"`
	FlightNumber OptString `json:"flight_number"`
}

// Itinerary is one display-ready search result.
type Itinerary struct {
	JourneyType string        `json:"journey_type"`
	Summary     string        `json:"summary,omitempty"`
	Price       string        `json:"price,omitempty"`
	Groups      []FlightGroup `json:"flight_groups"`
}

type FlightGroup struct {
	Routes []Route `json:"routes"`
}

type Route struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	FlightTime    string   `json:"flight_time"`
	Stops         string   `json:"stops"`
	Carrier       *Carrier `json:"carrier,omitempty"`
}

type Carrier struct {
	Name         string `json:"name"`
	FlightNumber string `json:"flight_number"`
	Abbreviation string `json:"abbreviation"`
	LogoURL      string `json:"logo_url,omitempty"`
}

// SearchRecord is what gets kept for the raw-response diagnostics view.
type SearchRecord struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Payload   SearchPayload `json:"payload"`
	Envelope  Envelope      `json:"envelope"`
}

type SearchResult struct {
	SearchID    string
	Payload     SearchPayload
	Envelope    Envelope
	Itineraries []Itinerary
}

// SearchResponse godoc model for POST /v1/flights/search.
type SearchResponse struct {
	SearchID     string      `json:"search_id"`
	Message      string      `json:"message"`
	Itineraries  []Itinerary `json:"itineraries"`
	EmptyMessage string      `json:"empty_message,omitempty"`
	Raw          Envelope    `json:"raw"`
}
