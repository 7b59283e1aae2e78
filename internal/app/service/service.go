// Package service stores both ShortenerServiceInterface and its main implementation.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/TonySyv/yshstob/internal/app/generator"
	"github.com/TonySyv/yshstob/internal/app/storage"
	"github.com/TonySyv/yshstob/internal/app/utils"
)

// maxGenerateAttempts bounds the generate-then-reserve loop of Shorten.
const maxGenerateAttempts = 10

// analyticsKeyPrefix marks the store keys that are counters, not mappings.
const analyticsKeyPrefix = "analytics:"

// urlCountPageSize is the page size of the key listing behind URLCount.
const urlCountPageSize = 1000

// ErrCodeNotFound is returned when a non-existing code is being resolved.
var ErrCodeNotFound = errors.New("no url found by the given code")

// ErrInvalidURL is returned when the submitted URL is empty or does not
// normalize to an absolute http(s) URL.
var ErrInvalidURL = errors.New("the provided payload is not a valid URL")

// ErrCodeSpaceExhausted is returned when the bounded generation loop failed
// to reserve a free code.
var ErrCodeSpaceExhausted = errors.New("failed to generate unique code")

// ShortenerServiceInterface is an interface for the business-logic layer of the application.
type ShortenerServiceInterface interface {

	// Shorten allocates a code for the given URL and persists the mapping.
	// It returns the code and the normalized URL the code maps to.
	Shorten(ctx context.Context, rawURL string, proposedCode string) (string, string, error)

	// Resolve reads the destination URL stored under the given code.
	Resolve(ctx context.Context, code string) (string, error)

	// URLCount counts the stored mappings.
	URLCount(ctx context.Context) (int, error)

	// Ping pings the required dependencies.
	Ping(ctx context.Context) error
}

// ShortenerService is the structure that implements the
// ShortenerServiceInterface interface and performs as the main business-logic
// generalization for the code-registry functionality.
type ShortenerService struct {
	repo     storage.KVStore
	generate func(length int) (string, error)
}

// NewService initializes the new ShortenerService structure, using its dependencies as an input.
func NewService(repo storage.KVStore) ShortenerService {
	return ShortenerService{repo: repo, generate: generator.Generate}
}

// Shorten validates and normalizes the raw URL, then reserves a code for it.
// A well-formed proposed code is honored when still free; otherwise codes
// are generated and reserved with a bounded number of attempts. The reserve
// is a conditional create, a lost race never overwrites an existing mapping.
func (s *ShortenerService) Shorten(ctx context.Context, rawURL string, proposedCode string) (string, string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", "", ErrInvalidURL
	}
	normalizedURL := utils.NormalizeURL(rawURL)
	if !utils.IsURL(normalizedURL) {
		return "", "", ErrInvalidURL
	}

	if utils.IsValidProposedCode(proposedCode) {
		created, err := s.repo.PutIfAbsent(ctx, proposedCode, normalizedURL)
		if err != nil {
			return "", "", err
		}
		if created {
			return proposedCode, normalizedURL, nil
		}
		// The proposed code is taken, fall through to generation.
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		candidate, err := s.generate(generator.CodeLength)
		if err != nil {
			return "", "", err
		}
		created, err := s.repo.PutIfAbsent(ctx, candidate, normalizedURL)
		if err != nil {
			return "", "", err
		}
		if created {
			return candidate, normalizedURL, nil
		}
	}
	return "", "", ErrCodeSpaceExhausted
}

// Resolve reads the destination URL stored under the given code.
func (s *ShortenerService) Resolve(ctx context.Context, code string) (string, error) {
	destinationURL, err := s.repo.Get(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return "", ErrCodeNotFound
		}
		return "", err
	}
	return destinationURL, nil
}

// URLCount walks the paginated key listing and counts the mapping keys,
// skipping the analytics counters that share the store.
func (s *ShortenerService) URLCount(ctx context.Context) (int, error) {
	var count int
	var cursor string
	for {
		keys, nextCursor, err := s.repo.List(ctx, cursor, urlCountPageSize)
		if err != nil {
			return 0, err
		}
		for _, key := range keys {
			if !strings.HasPrefix(key, analyticsKeyPrefix) {
				count++
			}
		}
		if nextCursor == "" {
			return count, nil
		}
		cursor = nextCursor
	}
}

// Ping pings the required dependencies.
func (s *ShortenerService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
