package flight

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelopeFrom(t *testing.T, body string) Envelope {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return Envelope{Error: false, Message: "Data fetched successfully", Data: &resp}
}

func TestNormalize_ErrorEnvelope(t *testing.T) {
	env := envelopeFrom(t, `{"data":[{"journey_type":"OneWay"}]}`)
	env.Error = true

	assert.Empty(t, Normalize(env))
}

func TestNormalize_NoFlightList(t *testing.T) {
	tests := map[string]string{
		"absent":       `{"resources":{}}`,
		"null":         `{"data":null}`,
		"not an array": `{"data":{"data":[]}}`,
		"string":       `{"data":"nothing"}`,
		"empty":        `{"data":[]}`,
		"not object":   `[{"journey_type":"OneWay"}]`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, Normalize(envelopeFrom(t, body)))
		})
	}

	assert.Empty(t, Normalize(Envelope{}))
}

func TestNormalize_PriceOnlyItem(t *testing.T) {
	got := Normalize(envelopeFrom(t, `{"data":[{"journey_type":"OneWay","price":{"total":5000},"flight_group":[]}]}`))

	require.Len(t, got, 1)
	assert.Equal(t, "OneWay", got[0].JourneyType)
	assert.Equal(t, "BDT 5000", got[0].Price)
	assert.Empty(t, got[0].Groups)
	assert.Empty(t, got[0].Summary)
}

func TestNormalize_PriceTotalAsReceived(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  string
	}{
		{"integer", `{"total":5000}`, "BDT 5000"},
		{"decimal string keeps trailing zero", `{"total":"12450.50"}`, "BDT 12450.50"},
		{"non-numeric string", `{"total":"5,000"}`, "BDT 5,000"},
		{"large integer keeps every digit", `{"total":12345678901234567890}`, "BDT 12345678901234567890"},
		{"decimal number literal", `{"total":6420.50}`, "BDT 6420.50"},
		{"empty total", `{"total":""}`, ""},
		{"null total", `{"total":null}`, ""},
		{"no total", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(envelopeFrom(t, `{"data":[{"journey_type":"OneWay","price":`+tt.price+`}]}`))

			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Price)
		})
	}
}

func TestNormalize_FullRoute(t *testing.T) {
	body := `{
		"data": [{
			"journey_type": "RoundTrip",
			"price": {"total": "12450.50"},
			"flight_group": [{
				"no_of_stops": 1,
				"flight_time": "3h 10m",
				"routes": [{
					"origin": "DAC",
					"destination": "CXB",
					"departure_time": "2025-06-06T08:05:00+06:00",
					"arrival_time": "2025-06-06 09:10:00",
					"marketing": {"carrier": "BS", "carrier_name": "US-Bangla", "carrier_logo": "/bs.png", "flight_number": 141}
				}]
			}]
		}],
		"resources": {"base_url": {"carrier": "https://cdn.example.com/logos/"}}
	}`

	got := Normalize(envelopeFrom(t, body))

	require.Len(t, got, 1)
	it := got[0]
	assert.Equal(t, "RoundTrip", it.JourneyType)
	assert.Equal(t, "BDT 12450.50", it.Price)
	assert.Equal(t, "DAC to CXB", it.Summary)
	require.Len(t, it.Groups, 1)
	require.Len(t, it.Groups[0].Routes, 1)

	route := it.Groups[0].Routes[0]
	assert.Equal(t, Route{
		Origin:        "DAC",
		Destination:   "CXB",
		DepartureTime: "08:05",
		ArrivalTime:   "09:10",
		FlightTime:    "3h 10m",
		Stops:         "1 Stop(s)",
		Carrier: &Carrier{
			Name:         "US-Bangla",
			FlightNumber: "141",
			Abbreviation: "BS",
			LogoURL:      "https://cdn.example.com/logos/bs.png",
		},
	}, route)
}

func TestNormalize_StopsLabel(t *testing.T) {
	tests := []struct {
		stops string
		want  string
	}{
		{`0`, "Direct"},
		{`2`, "2 Stop(s)"},
		{`"1"`, "1 Stop(s)"},
		{`null`, "N/A"},
		{`"many"`, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.stops, func(t *testing.T) {
			body := `{"data":[{"flight_group":[{"no_of_stops":` + tt.stops + `,"routes":[{}]}]}]}`
			got := Normalize(envelopeFrom(t, body))

			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Groups[0].Routes[0].Stops)
		})
	}
}

func TestNormalize_RouteWithoutMarketing(t *testing.T) {
	body := `{"data":[{"journey_type":"OneWay","flight_group":[{"no_of_stops":0,"routes":[
		{"origin":"DAC","destination":"CGP","departure_time":"2025-06-06T10:30:00","arrival_time":"2025-06-06T11:25:00"}
	]}]}]}`

	got := Normalize(envelopeFrom(t, body))

	route := got[0].Groups[0].Routes[0]
	assert.Equal(t, "DAC", route.Origin)
	assert.Equal(t, "CGP", route.Destination)
	assert.Equal(t, "10:30", route.DepartureTime)
	assert.Equal(t, "11:25", route.ArrivalTime)
	assert.Equal(t, "Direct", route.Stops)
	assert.Nil(t, route.Carrier)
}

func TestNormalize_Fallbacks(t *testing.T) {
	body := `{"data":[
		{"journey_type":"OneWay"},
		{"journey_type":"OneWay","price":"free","flight_group":"none"},
		{"flight_group":[{"flight_time":"1h"},{"routes":[{}, null, "bad", {"departure_time":"soon","marketing":{}}]}]}
	]}`

	got := Normalize(envelopeFrom(t, body))
	require.Len(t, got, 3)

	assert.Empty(t, got[0].Price)
	assert.Empty(t, got[0].Groups)
	assert.Empty(t, got[1].Price)
	assert.Empty(t, got[1].Groups)

	third := got[2]
	assert.Empty(t, third.JourneyType)
	assert.Empty(t, third.Summary)
	require.Len(t, third.Groups, 2)
	assert.Empty(t, third.Groups[0].Routes)
	require.Len(t, third.Groups[1].Routes, 4)

	for _, r := range third.Groups[1].Routes {
		assert.Equal(t, "N/A", r.Origin)
		assert.Equal(t, "N/A", r.Destination)
		assert.Equal(t, "N/A", r.DepartureTime)
		assert.Equal(t, "N/A", r.ArrivalTime)
		assert.Equal(t, "N/A", r.FlightTime)
		assert.Equal(t, "N/A", r.Stops)
	}

	carrier := third.Groups[1].Routes[3].Carrier
	require.NotNil(t, carrier)
	assert.Equal(t, Carrier{Name: "N/A", FlightNumber: "N/A", Abbreviation: "AL"}, *carrier)
}

func TestNormalize_FlightTimeFallsBackToGroup(t *testing.T) {
	body := `{"data":[{"flight_group":[{"flight_time":"2h 5m","routes":[{"origin":"DAC"},{"origin":"DXB","flight_time":"40m"}]}]}]}`

	routes := Normalize(envelopeFrom(t, body))[0].Groups[0].Routes

	assert.Equal(t, "2h 5m", routes[0].FlightTime)
	assert.Equal(t, "40m", routes[1].FlightTime)
}

func TestNormalize_CarrierLogo(t *testing.T) {
	tests := []struct {
		name      string
		resources string
		marketing string
		wantLogo  string
		wantAbbr  string
		wantName  string
	}{
		{
			name:      "both halves",
			resources: `{"base_url":{"carrier":"https://cdn.example.com"}}`,
			marketing: `{"carrier":"BG","carrier_logo":"bg.png"}`,
			wantLogo:  "https://cdn.example.com/bg.png",
			wantAbbr:  "BG",
			wantName:  "BG",
		},
		{
			name:      "missing base url",
			resources: `{}`,
			marketing: `{"carrier":"BG","carrier_logo":"bg.png","carrier_name":"Biman"}`,
			wantAbbr:  "BG",
			wantName:  "Biman",
		},
		{
			name:      "missing logo path",
			resources: `{"base_url":{"carrier":"https://cdn.example.com"}}`,
			marketing: `{"carrier":"EK123"}`,
			wantAbbr:  "EK",
			wantName:  "EK123",
		},
		{
			name:      "missing carrier code",
			resources: `{"base_url":{"carrier":"https://cdn.example.com"}}`,
			marketing: `{"carrier_logo":"x.png"}`,
			wantLogo:  "https://cdn.example.com/x.png",
			wantAbbr:  "AL",
			wantName:  "N/A",
		},
		{
			name:      "single letter code",
			resources: `"not an object"`,
			marketing: `{"carrier":"Q"}`,
			wantAbbr:  "Q",
			wantName:  "Q",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"resources":` + tt.resources + `,"data":[{"flight_group":[{"routes":[{"marketing":` + tt.marketing + `}]}]}]}`

			carrier := Normalize(envelopeFrom(t, body))[0].Groups[0].Routes[0].Carrier

			require.NotNil(t, carrier)
			assert.Equal(t, tt.wantLogo, carrier.LogoURL)
			assert.Equal(t, tt.wantAbbr, carrier.Abbreviation)
			assert.Equal(t, tt.wantName, carrier.Name)
		})
	}
}

func TestNormalize_PreservesOrder(t *testing.T) {
	body := `{"data":[{"journey_type":"C"},{"journey_type":"A"},{"journey_type":"B"},{"journey_type":"A"}]}`

	got := Normalize(envelopeFrom(t, body))

	require.Len(t, got, 4)
	assert.Equal(t, []string{"C", "A", "B", "A"}, []string{got[0].JourneyType, got[1].JourneyType, got[2].JourneyType, got[3].JourneyType})
}

func TestAPIResponse_MarshalKeepsRawBody(t *testing.T) {
	body := `{"data":[{"journey_type":"OneWay","extra":{"kept":true}}],"status":"ok"}`
	env := envelopeFrom(t, body)

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded Envelope
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.NotNil(t, decoded.Data)
	assert.JSONEq(t, body, string(decoded.Data.Raw))
	assert.Equal(t, "OneWay", decoded.Data.Data[0].JourneyType.Value)
}
