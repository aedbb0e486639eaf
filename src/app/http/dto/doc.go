// Package dto contains HTTP-only binding types.
//
// Request and response bodies are the facade DTOs from src/core/dto; this
// package only holds shapes that exist because of HTTP itself, such as query
// string parameters.
package dto
