package api

import "net/http"

// WelcomeResponse is the root endpoint payload.
type WelcomeResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Item is a fixture record returned by the data endpoint.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DataResponse wraps the fixture items with their count.
type DataResponse struct {
	Items []Item `json:"items"`
	Count int    `json:"count"`
}

// HealthResponse is the health endpoint payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// fixtureItems are created once at process start and never mutated. Ids are
// unique and ascending; the order is part of the fixture's contract.
var fixtureItems = []Item{
	{ID: 1, Name: "Item 1", Description: "First item"},
	{ID: 2, Name: "Item 2", Description: "Second item"},
	{ID: 3, Name: "Item 3", Description: "Third item"},
}

// handleHome handles GET /
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, WelcomeResponse{
		Message: "Welcome to the API",
		Status:  "running",
		Service: s.config.Service.Name,
	})
}

// handleData handles GET /api/data
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, DataResponse{
		Items: fixtureItems,
		Count: len(fixtureItems),
	})
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: s.config.Service.Name,
	})
}
