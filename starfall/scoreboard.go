package starfall

import (
	"sort"
	"time"
)

const maxScoreEntries = 10

type ScoreEntry struct {
	Name  string    `yaml:"name"`
	Score int       `yaml:"score"`
	Time  time.Time `yaml:"time"`
}

type LocalData struct {
	Scoreboard []ScoreEntry `yaml:"scoreboard"`
}

func (data *LocalData) Highscore() ScoreEntry {
	highscore := ScoreEntry{}

	for _, scoreEntry := range data.Scoreboard {
		if scoreEntry.Score > highscore.Score {
			highscore = scoreEntry
		}
	}

	return highscore
}

// RecordScore keeps one entry per session start time, so a score that keeps
// improving during a run updates its own row.
func (data *LocalData) RecordScore(score ScoreEntry) {
	for i, entry := range data.Scoreboard {
		if entry.Time.Equal(score.Time) && entry.Name == score.Name {
			if score.Score > entry.Score {
				data.Scoreboard[i].Score = score.Score
			}
			data.trim()
			return
		}
	}
	data.Scoreboard = append(data.Scoreboard, score)
	data.trim()
}

func (data *LocalData) trim() {
	sort.SliceStable(data.Scoreboard, func(i, j int) bool {
		return data.Scoreboard[i].Score > data.Scoreboard[j].Score
	})
	if len(data.Scoreboard) > maxScoreEntries {
		data.Scoreboard = data.Scoreboard[:maxScoreEntries]
	}
}
