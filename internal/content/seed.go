package content

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/pryank18/ArchaeologyWala/internal/docs"
)

// ReadingTimer estimates reading minutes for a body. The document
// processor satisfies it; seeds only need this one capability.
type ReadingTimer interface {
	ReadingTime(body string) int
}

// seedFrontMatter models the YAML metadata accepted at the top of a seed
// article file.
type seedFrontMatter struct {
	Title   string    `yaml:"title"`
	Slug    string    `yaml:"slug"`
	Author  string    `yaml:"author"`
	Date    time.Time `yaml:"date"`
	Hero    string    `yaml:"hero"`
	Tags    []string  `yaml:"tags"`
	Minutes int       `yaml:"minutes"`
}

// LoadSeed walks fsys for markdown files and adds each as a published post.
// The slug comes from front matter or is derived from the title; a post
// without an explicit minutes field gets the estimator's fallback. Files
// that fail to parse or collide with an existing slug are skipped with a
// warning, the rest of the seed still loads.
//
// Seeded posts are ordered newest-first by date before insertion so the
// corpus matches its usual presentation order.
func (s *Service) LoadSeed(ctx context.Context, fsys fs.FS, processor ReadingTimer) (int, error) {
	var posts []Post

	err := fs.WalkDir(fsys, ".", func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(path.Ext(filePath), ".md") {
			return nil
		}

		source, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			s.logger.Warn("content.seed.read_failed", "path", filePath, "error", err)
			return nil
		}

		post, err := parseSeedFile(source, processor)
		if err != nil {
			s.logger.Warn("content.seed.parse_failed", "path", filePath, "error", err)
			return nil
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("content: seed walk: %w", err)
	}

	// Oldest first here; AddPost prepends, leaving the corpus newest-first.
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Date.Before(posts[j].Date)
	})

	added := 0
	for _, post := range posts {
		if err := s.AddPost(ctx, post); err != nil {
			s.logger.Warn("content.seed.skipped", "slug", post.Slug, "error", err)
			continue
		}
		added++
	}
	return added, nil
}

func parseSeedFile(source []byte, processor ReadingTimer) (Post, error) {
	var meta seedFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return Post{}, fmt.Errorf("parse front matter: %w", err)
	}

	slug := strings.TrimSpace(meta.Slug)
	if slug == "" {
		slug = docs.Slugify(meta.Title)
	}

	minutes := meta.Minutes
	if minutes <= 0 && processor != nil {
		minutes = processor.ReadingTime(string(body))
	}

	return Post{
		Slug:    slug,
		Title:   strings.TrimSpace(meta.Title),
		Author:  strings.TrimSpace(meta.Author),
		Date:    meta.Date,
		Hero:    strings.TrimSpace(meta.Hero),
		Tags:    meta.Tags,
		Minutes: minutes,
		Body:    string(body),
	}, nil
}
