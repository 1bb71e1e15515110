package starfall

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// HighScoreStore is the single persisted value of the game.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

func ReadLocalData(path string) (LocalData, error) {
	persistent := LocalData{}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return persistent, nil
	}
	if err != nil {
		return persistent, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &persistent); err != nil {
		return LocalData{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return persistent, nil
}

func (data *LocalData) WriteToFile(path string) error {
	yml, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode local data: %w", err)
	}

	if err := os.WriteFile(path, yml, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// FileStore keeps the scoreboard in a YAML file. Every Save rewrites the row
// belonging to this run.
type FileStore struct {
	Path    string
	Name    string
	Started time.Time
}

func NewFileStore(path, name string) *FileStore {
	return &FileStore{
		Path:    path,
		Name:    name,
		Started: time.Now().UTC().Truncate(time.Second),
	}
}

func (s *FileStore) Load() (int, error) {
	data, err := ReadLocalData(s.Path)
	if err != nil {
		return 0, err
	}
	return data.Highscore().Score, nil
}

func (s *FileStore) Save(score int) error {
	data, err := ReadLocalData(s.Path)
	if err != nil {
		// a corrupt file is replaced rather than blocking every later save
		data = LocalData{}
	}
	data.RecordScore(ScoreEntry{
		Name:  s.Name,
		Score: score,
		Time:  s.Started,
	})
	return data.WriteToFile(s.Path)
}

// memoryStore is used when no file is configured.
type memoryStore struct {
	score int
}

func (s *memoryStore) Load() (int, error) { return s.score, nil }

func (s *memoryStore) Save(score int) error {
	s.score = score
	return nil
}
