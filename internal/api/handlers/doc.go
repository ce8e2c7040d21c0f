// Package handlers implements the HTTP handlers of the mock 3Commas API. Every
// handler reads and writes through store.Store and answers errors with the
// 3Commas error envelope.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
