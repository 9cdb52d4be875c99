package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
)

func main() {
	// Default port
	port := "9090"

	// Check if port is provided as command line argument
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	handler := &InnoTravelHandler{
		SecretCode:   envOr("FLIGHT_API_SECRET_CODE", "local-secret"),
		APIKey:       envOr("FLIGHT_API_KEY", "local-key"),
		ResponseFile: envOr("MOCK_RESPONSE_FILE", "mock/files/innotravel_search_response.json"),
	}
	http.Handle("/flight/search", handler)

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Go Mock Server running on port %s...\n", port)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
