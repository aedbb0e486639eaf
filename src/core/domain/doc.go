// Package domain contains the core domain model for the catalog.
//
// This package defines:
//   - Entities: Joke, Role, Account and the Audit record attached to jokes
//   - Value Objects: PagingFilter and PagingInfo
//   - Domain Errors: business rule violations carrying a stable code and HTTP status
//
// Rules for this package:
//   - No infrastructure concerns (database, HTTP routing, etc.)
//   - Entities are plain data; validation lives in the validation package
//   - Value objects are immutable
//
// Example:
//
//	joke := domain.Joke{
//	    UUID:    uuid.New(),
//	    Content: "Why did the gopher cross the road?",
//	    Audit:   domain.Audit{CreatedAt: now, CreatedBy: "system"},
//	}
package domain
