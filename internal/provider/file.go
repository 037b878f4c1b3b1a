package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/parkfit/parkfit/internal/domain/model"
)

// FileSource reads hitter profiles from a JSON file holding an array of
// profiles. The file is parsed once on first use and cached.
type FileSource struct {
	path string

	once     sync.Once
	profiles []model.HitterProfile
	loadErr  error
}

// NewFileSource creates a source backed by the JSON file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Profiles loads the file if needed and returns the matching profiles.
func (s *FileSource) Profiles(ctx context.Context, q Query) ([]model.HitterProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.once.Do(s.load)
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return Filter(s.profiles, q), nil
}

func (s *FileSource) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.loadErr = fmt.Errorf("%w: %v", ErrProfileLoad, err)
		return
	}
	var profiles []model.HitterProfile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		s.loadErr = fmt.Errorf("%w: %s: %v", ErrProfileLoad, s.path, err)
		return
	}
	s.profiles = profiles
}
