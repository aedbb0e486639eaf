package validation

import (
	"strings"

	"jokecatalog/src/core/domain"
	"jokecatalog/src/core/dto"
)

// Joke validates add and update requests.
var Joke = New(
	Rule[dto.JokeRequest]{
		Field:    "content",
		Violated: func(r dto.JokeRequest) bool { return r.Content == nil },
		Err:      domain.JokeContentNull,
	},
	Rule[dto.JokeRequest]{
		Field:    "content",
		Violated: func(r dto.JokeRequest) bool { return r.Content != nil && *r.Content == "" },
		Err:      domain.JokeContentEmpty,
	},
	Rule[dto.JokeRequest]{
		Field:    "content",
		Violated: func(r dto.JokeRequest) bool { return r.Content != nil && strings.ContainsRune(*r.Content, 0) },
		Err:      domain.JokeContentInvalid,
	},
)
