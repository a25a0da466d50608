package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/justify"
	"github.com/tdewolff/test"
)

// runMain runs main in a child process with the given arguments and standard input, returning its standard output.
func runMain(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^TestMainProcess$")
	cmd.Env = append(os.Environ(), "JUSTIFY_MAIN_ARGS="+strings.Join(args, "\x1f"))
	cmd.Stdin = strings.NewReader(stdin)
	stdout := &bytes.Buffer{}
	cmd.Stdout = stdout
	err := cmd.Run()
	return stdout.String(), err
}

func TestMainProcess(t *testing.T) {
	args, ok := os.LookupEnv("JUSTIFY_MAIN_ARGS")
	if !ok {
		t.Skip("only run as child process of runMain")
	}
	os.Args = append([]string{"justify"}, strings.Split(args, "\x1f")...)
	main()
}

func TestWidthFlag(t *testing.T) {
	var tests = []struct {
		args []string
		out  string
	}{
		{[]string{"-w", "1"}, "ab\ncd\nef\n"},
		{[]string{"-w", "1,1000"}, "ab\ncd ef\n"},
		{[]string{"--width", "1,", "1000"}, "ab\ncd ef\n"},
		{[]string{"--width", "[1", "1000]"}, "ab\ncd ef\n"},
		{[]string{"--width=1000"}, "ab cd ef\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := runMain(t, "ab cd ef", tt.args...)
			test.Error(t, err)
			test.String(t, out, tt.out)
		})
	}

	for _, args := range [][]string{{"-w", "1,abc"}, {"-w", "1,,2"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := runMain(t, "ab cd ef", args...)
			exitErr, ok := err.(*exec.ExitError)
			test.That(t, ok && exitErr.ExitCode() == 2, "must exit with status 2:", err)
		})
	}
}

func TestLoadJob(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "job.toml")
	err := os.WriteFile(filename, []byte(`
size = 12.0
widths = [100.0, 80.0]
harfbuzz = true
text = "ab cd"
`), 0644)
	test.Error(t, err)

	job, err := LoadJob(filename)
	test.Error(t, err)
	test.T(t, job, Job{Size: 12.0, Widths: []float64{100.0, 80.0}, Harfbuzz: true, Text: "ab cd"})

	cmd := &Justify{Config: filename, Width: []float64{50.0}, Space: "_"}
	job, err = cmd.Job()
	test.Error(t, err)
	test.T(t, job.Widths, []float64{50.0})
	test.Float(t, job.Size, 12.0)
	space, err := job.SpaceRune()
	test.Error(t, err)
	test.T(t, space, '_')

	_, err = LoadJob(filepath.Join(t.TempDir(), "missing.toml"))
	test.That(t, err != nil, "missing file")
}

func TestJobDefaults(t *testing.T) {
	job, err := (&Justify{}).Job()
	test.Error(t, err)
	test.Float(t, job.Size, 10.0)
	space, err := job.SpaceRune()
	test.Error(t, err)
	test.T(t, space, ' ')

	_, err = Job{Space: "ab"}.SpaceRune()
	test.That(t, err != nil, "space of two characters")
}

func TestWrite(t *testing.T) {
	pars := [][]justify.Line{
		{{Text: "ab", Width: 10.0}, {Text: "cd", Width: 30.0}},
		{{Text: "ef", Width: 5.0}},
	}

	w := &bytes.Buffer{}
	test.Error(t, Write(w, pars, false))
	test.String(t, w.String(), "ab\ncd\n\nef\n")

	w.Reset()
	test.Error(t, Write(w, pars, true))
	test.String(t, w.String(), "  10.00 ab\n  30.00 cd\n\n   5.00 ef\n")
}
