package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
)

type SearchSegment struct {
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	DepartureDate    string `json:"departure_date"` // Format: YYYY-MM-DD
}

type SearchRequest struct {
	JourneyType string          `json:"journey_type"`
	Segment     []SearchSegment `json:"segment"`
}

// InnoTravelHandler imitates POST /flight/search of the InnoTravel API.
// Items are kept as raw JSON so fixtures with missing or mistyped fields
// reach the client untouched.
type InnoTravelHandler struct {
	SecretCode   string
	APIKey       string
	ResponseFile string
}

func (h *InnoTravelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if r.Header.Get("secretecode") != h.SecretCode || r.Header.Get("apikey") != h.APIKey {
		http.Error(w, `{"message":"invalid credentials"}`, http.StatusUnauthorized)
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"invalid payload"}`, http.StatusBadRequest)
		return
	}

	// Read JSON file
	data, err := os.ReadFile(h.ResponseFile)
	if err != nil {
		http.Error(w, "Failed to read flight data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var fileResponse struct {
		Data      []json.RawMessage `json:"data"`
		Resources json.RawMessage   `json:"resources"`
	}
	if err := json.Unmarshal(data, &fileResponse); err != nil {
		http.Error(w, "Failed to parse flight data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Apply filtering
	items := make([]json.RawMessage, 0, len(fileResponse.Data))
	for _, item := range fileResponse.Data {
		if matchesRoute(item, req) {
			items = append(items, item)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"data":      items,
		"resources": fileResponse.Resources,
	})
}

// matchesRoute keeps items whose first route starts at the requested origin.
// Items without a readable first route are always kept.
func matchesRoute(item json.RawMessage, req SearchRequest) bool {
	if len(req.Segment) == 0 {
		return true
	}

	var probe struct {
		FlightGroup []struct {
			Routes []struct {
				Origin string `json:"origin"`
			} `json:"routes"`
		} `json:"flight_group"`
	}
	if err := json.Unmarshal(item, &probe); err != nil {
		return true
	}
	if len(probe.FlightGroup) == 0 || len(probe.FlightGroup[0].Routes) == 0 {
		return true
	}

	origin := probe.FlightGroup[0].Routes[0].Origin
	return origin == "" || strings.EqualFold(origin, req.Segment[0].DepartureAirport)
}
