package lexicon

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/wordduel/internal/storage"
)

// Service is the read-only set of accepted words, shared by every match
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool
}

// New creates a new lexicon Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   make(map[string]struct{}),
	}
}

// Load prefers the word list already held in storage and falls back to the
// file at path, which is then written back to storage
func (s *Service) Load(ctx context.Context, path string) error {
	err := s.LoadFromStorage(ctx)
	if err == nil {
		s.logger.Info("lexicon loaded from storage", slog.Int("words", s.WordCount()))
		return nil
	}
	s.logger.Debug("lexicon not in storage", slog.String("error", err.Error()))
	return s.LoadFromFile(ctx, path)
}

// LoadFromStorage loads words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetLexiconWords(ctx)
	if err != nil {
		return err
	}
	s.loadWords(words)
	return nil
}

// LoadFromFile loads a newline-delimited word list. A missing file leaves
// an empty, loaded lexicon that rejects every multi-letter word.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("lexicon file not found, using empty lexicon", slog.String("path", path))
			s.loadWords(nil)
			return nil
		}
		return err
	}
	defer file.Close()

	words, err := readWords(file)
	if err != nil {
		return err
	}

	// Save to storage for future use
	if err := s.storage.SaveLexiconWords(ctx, words); err != nil {
		return err
	}

	s.loadWords(words)
	s.logger.Info("lexicon loaded from file", slog.String("path", path), slog.Int("words", len(words)))
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) {
	s.loadWords(words)
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if word != "" {
			words = append(words, word)
		}
	}
	return words, scanner.Err()
}

func (s *Service) loadWords(words []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]struct{}, len(words))
	for _, word := range words {
		s.words[strings.ToUpper(word)] = struct{}{}
	}
	s.loaded = true
}

// Contains reports whether word is in the lexicon. Lookups are uppercase.
func (s *Service) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.words[strings.ToUpper(word)]
	return ok
}

// IsLoaded returns whether the lexicon has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the lexicon
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Interface check
type ServiceInterface interface {
	Contains(word string) bool
	IsLoaded() bool
	WordCount() int
	Load(ctx context.Context, path string) error
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string)
}

var _ ServiceInterface = (*Service)(nil)
