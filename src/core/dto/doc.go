// Package dto contains the request and response shapes exposed by the facades.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed (jokes are addressed by UUID, never by storage id)
//   - Distinguish a missing field from an empty one on input (pointer fields)
//   - Version the API without changing domain models
//
// Naming convention:
//   - Request types: <Resource>Request (e.g., JokeRequest)
//   - Response types: <Resource>Response (e.g., JokeResponse)
package dto
