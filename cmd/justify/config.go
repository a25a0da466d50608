package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Job describes what to justify, it is read from a TOML file and overridden by command-line flags.
type Job struct {
	Font     string    `toml:"font"`
	Size     float64   `toml:"size"`
	Widths   []float64 `toml:"widths"`
	Harfbuzz bool      `toml:"harfbuzz"`
	Space    string    `toml:"space"`
	Text     string    `toml:"text"`
}

// LoadJob reads a job from a TOML file.
func LoadJob(filename string) (Job, error) {
	job := Job{}
	b, err := os.ReadFile(filename)
	if err != nil {
		return job, err
	}
	if err := toml.Unmarshal(b, &job); err != nil {
		return job, fmt.Errorf("%s: %w", filename, err)
	}
	return job, nil
}

// SpaceRune returns the break codepoint, which defaults to U+0020.
func (job Job) SpaceRune() (rune, error) {
	if job.Space == "" {
		return ' ', nil
	}
	rs := []rune(job.Space)
	if len(rs) != 1 {
		return 0, fmt.Errorf("space must be one Unicode character")
	}
	return rs[0], nil
}
