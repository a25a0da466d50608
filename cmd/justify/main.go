package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/justify"
)

var level = new(slog.LevelVar)

type Justify struct {
	Font     string    `short:"f" desc:"Font file (TTF or OTF), defaults to Latin Modern Roman"`
	Size     float64   `short:"s" desc:"Font size in pt (default 10)"`
	Width    []float64 `short:"w" desc:"Line widths in pt, the last width is used for the remaining lines"`
	Harfbuzz bool      `desc:"Use OpenType shaping"`
	Space    string    `desc:"Break codepoint (default U+0020)"`
	Config   string    `short:"c" desc:"TOML job file"`
	Verbose  bool      `short:"v" desc:"Print line widths and diagnostics"`
	Input    string    `index:"0" desc:"Input file, defaults to stdin"`
}

func main() {
	level.Set(slog.LevelWarn)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	root := argp.NewCmd(&Justify{}, "Break text into lines for a sequence of line widths")
	root.Parse()
	root.PrintHelp()
}

// Job merges the job file with the command-line flags, flags take precedence.
func (cmd *Justify) Job() (Job, error) {
	job := Job{}
	if cmd.Config != "" {
		var err error
		if job, err = LoadJob(cmd.Config); err != nil {
			return job, err
		}
		slog.Debug("loaded job", "file", cmd.Config, "widths", job.Widths)
	}
	if cmd.Font != "" {
		job.Font = cmd.Font
	}
	if cmd.Size != 0.0 {
		job.Size = cmd.Size
	}
	if len(cmd.Width) != 0 {
		job.Widths = cmd.Width
	}
	if cmd.Harfbuzz {
		job.Harfbuzz = true
	}
	if cmd.Space != "" {
		job.Space = cmd.Space
	}
	if job.Size == 0.0 {
		job.Size = 10.0
	}
	return job, nil
}

func (cmd *Justify) Run() error {
	if cmd.Verbose {
		level.Set(slog.LevelDebug)
	}

	job, err := cmd.Job()
	if err != nil {
		return err
	} else if len(job.Widths) == 0 {
		fmt.Println("ERROR: must specify line widths")
		return argp.ShowUsage
	}

	space, err := job.SpaceRune()
	if err != nil {
		return err
	}

	var font *justify.Font
	if job.Font != "" {
		font, err = justify.LoadFontFile(job.Font, job.Harfbuzz)
	} else {
		font, err = justify.LoadLatinModern(job.Harfbuzz)
	}
	if err != nil {
		return err
	}
	slog.Debug("loaded font", "name", font.Name(), "unitsPerEm", font.UnitsPerEm(), "harfbuzz", job.Harfbuzz)

	s := job.Text
	if cmd.Input != "" || s == "" {
		var b []byte
		if cmd.Input == "" || cmd.Input == "-" {
			b, err = io.ReadAll(os.Stdin)
		} else {
			b, err = os.ReadFile(cmd.Input)
		}
		if err != nil {
			return err
		}
		s = string(b)
	}

	face := font.Face(job.Size)
	face.Space = space
	pars, err := face.JustifyParagraphs(s, job.Widths...)
	if err != nil {
		return err
	}
	return Write(os.Stdout, pars, cmd.Verbose)
}

// Write writes the lines of each paragraph, separating paragraphs by an empty line. If verbose is set, every line is prefixed by its width.
func Write(w io.Writer, pars [][]justify.Line, verbose bool) error {
	for i, lines := range pars {
		if 0 < i {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for _, line := range lines {
			var err error
			if verbose {
				_, err = fmt.Fprintf(w, "%7.2f %s\n", line.Width, line.Text)
			} else {
				_, err = fmt.Fprintln(w, line.Text)
			}
			if err != nil {
				return err
			}
		}
		if verbose {
			slog.Debug("paragraph", "index", i, "lines", len(lines))
		}
	}
	return nil
}
