package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/rkawale/mediawatch/app/database"
)

// SourceSeed is one YAML media-source file in the sources directory. Sources
// are seeded from files at startup and owned by the admin surface afterwards.
type SourceSeed struct {
	Name             string  `yaml:"name"`
	Type             string  `yaml:"type"`
	Language         string  `yaml:"language"`
	Region           string  `yaml:"region"`
	FeedURL          string  `yaml:"feed_url"`
	YouTubeChannelID string  `yaml:"youtube_channel_id"`
	Credibility      float64 `yaml:"credibility"`
	Active           *bool   `yaml:"active"`
	FetchInterval    int     `yaml:"fetch_interval"`
}

// LoadSources reads every *.yml seed file in dir and upserts it, keyed by
// feed URL. A missing directory is not an error; a broken file skips that
// file only.
func LoadSources(dir string, repo database.SourceRepository) (int, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yml"))
	if err != nil {
		return 0, fmt.Errorf("failed to find source seed files: %w", err)
	}

	loaded := 0
	for _, file := range files {
		seed, err := parseSeed(file)
		if err != nil {
			slog.Warn("Skipping invalid source seed", "file", file, "error", err)
			continue
		}

		if _, err := repo.UpsertSource(seed.toSource()); err != nil {
			slog.Warn("Failed to register source", "file", file, "error", err)
			continue
		}
		loaded++
	}
	return loaded, nil
}

func parseSeed(file string) (*SourceSeed, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var seed SourceSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if seed.Name == "" {
		return nil, fmt.Errorf("source name is required")
	}
	if seed.FeedURL == "" && seed.YouTubeChannelID == "" {
		return nil, fmt.Errorf("feed_url or youtube_channel_id is required")
	}
	if seed.Type == "" {
		seed.Type = "online"
	}
	if seed.FetchInterval == 0 {
		seed.FetchInterval = 3600
	}
	if seed.Credibility == 0 {
		seed.Credibility = 0.5
	}
	seed.Language = normalizeLanguage(seed.Language)

	return &seed, nil
}

func (s *SourceSeed) toSource() database.MediaSource {
	active := true
	if s.Active != nil {
		active = *s.Active
	}
	feedURL := s.FeedURL
	if feedURL == "" && s.YouTubeChannelID != "" {
		// YouTube channels expose uploads as an Atom feed; metadata polling
		// rides the same ingestion path as RSS.
		feedURL = "https://www.youtube.com/feeds/videos.xml?channel_id=" + s.YouTubeChannelID
	}
	return database.MediaSource{
		Name:             s.Name,
		Type:             s.Type,
		Language:         s.Language,
		Region:           s.Region,
		FeedURL:          feedURL,
		YouTubeChannelID: s.YouTubeChannelID,
		CredibilityScore: s.Credibility,
		Active:           active,
		FetchInterval:    s.FetchInterval,
	}
}

// normalizeLanguage reduces whatever tag the seed file carries ("hi-IN",
// "Hindi" typos aside) to the two-letter base code the lexicons key on.
func normalizeLanguage(lang string) string {
	if lang == "" {
		return "en"
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return strings.ToLower(base.String())
}
