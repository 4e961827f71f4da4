// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package localize

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/nbsubmit/internal/notebook"
	"github.com/pdiddy/nbsubmit/pkg/types"
)

func codeCell(source string) notebook.Cell {
	return notebook.Cell{Type: notebook.CellCode, Source: source}
}

func colabDoc() *notebook.Document {
	return &notebook.Document{
		Cells: []notebook.Cell{
			{Type: notebook.CellMarkdown, Source: "# Assignment 1\n"},
			codeCell("!git clone https://github.com/course/student_repo.git\n"),
			codeCell("%cd student_repo\n"),
			codeCell("from getpass import getpass\ntoken = getpass('GitHub PAT: ')\n"),
			codeCell("!pip install -r requirements.txt\n"),
			codeCell("!python Project-1/readmit30/scripts/train.py\n"),
			codeCell("!git push origin main\n"),
			codeCell("print('done')\n"),
		},
		Metadata:      map[string]any{"kernelspec": map[string]any{"name": "python3"}},
		NBFormat:      4,
		NBFormatMinor: 5,
	}
}

func TestApplyDefaultRules(t *testing.T) {
	doc := colabDoc()
	out, res := Apply(doc, DefaultRules())

	// Setup cell, markdown header, rewritten script cell, final print.
	require.Len(t, out.Cells, 4)
	assert.Equal(t, 4, res.Kept)
	assert.Len(t, res.Skipped, 5)

	setup := out.Cells[0]
	assert.Equal(t, notebook.CellCode, setup.Type)
	assert.Contains(t, setup.Source, "os.environ['TRAIN_PATH']")

	assert.Equal(t, "# Assignment 1\n", out.Cells[1].Source)
	assert.Equal(t, "!python ../scripts/train.py\n", out.Cells[2].Source)
	assert.Equal(t, "print('done')\n", out.Cells[3].Source)

	// Source document untouched.
	assert.Len(t, doc.Cells, 8)
	assert.Equal(t, "!python Project-1/readmit30/scripts/train.py\n", doc.Cells[5].Source)
}

func TestApplySkipReasons(t *testing.T) {
	_, res := Apply(colabDoc(), DefaultRules())

	reasons := make([]string, len(res.Skipped))
	for i, s := range res.Skipped {
		reasons[i] = s.Reason
	}
	assert.Equal(t, []string{
		"git clone",
		"cd student_repo",
		"GitHub authentication",
		"pip install requirements",
		"git push",
	}, reasons)
}

func TestMatchSkipRequiresAllSubstrings(t *testing.T) {
	rules := DefaultRules().Skip

	// getpass alone is not a credential prompt.
	_, skip := matchSkip("from getpass import getpass\n", rules)
	assert.False(t, skip)

	// pip install without requirements.txt stays.
	_, skip = matchSkip("!pip install numpy\n", rules)
	assert.False(t, skip)

	reason, skip := matchSkip("x = getpass('GitHub PAT')\n", rules)
	assert.True(t, skip)
	assert.Equal(t, "GitHub authentication", reason)
}

func TestApplyNoSetupCell(t *testing.T) {
	rules := Rules{Skip: []SkipRule{{Contains: []string{"drop me"}, Reason: "marked"}}}
	doc := &notebook.Document{
		Cells:    []notebook.Cell{codeCell("keep\n"), codeCell("drop me\n")},
		NBFormat: 4,
	}

	out, res := Apply(doc, rules)
	require.Len(t, out.Cells, 1)
	assert.Equal(t, "keep\n", out.Cells[0].Source)
	assert.Equal(t, []SkipRecord{{Index: 1, Reason: "marked"}}, res.Skipped)
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
setup: "import os\n"
skip:
  - contains: ["secret"]
    reason: "credentials"
rewrites:
  - from: "/content/"
    to: "./"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, "import os\n", rules.Setup)
	require.Len(t, rules.Skip, 1)
	assert.Equal(t, "credentials", rules.Skip[0].Reason)
	require.Len(t, rules.Rewrites, 1)
	assert.Equal(t, "/content/", rules.Rewrites[0].From)
}

func TestLoadRulesErrors(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skip: [not: valid: yaml"), 0o644))
	_, err = LoadRules(path)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "colab.ipynb")
	require.NoError(t, notebook.Write(colabDoc(), input))
	output := filepath.Join(dir, "local.ipynb")

	var buf bytes.Buffer
	err := Run(types.LocalizeConfig{InputPath: input, OutputPath: output}, &buf)
	require.NoError(t, err)

	doc, err := notebook.Load(output)
	require.NoError(t, err)
	assert.Len(t, doc.Cells, 4)
	assert.Contains(t, doc.Metadata, "kernelspec")

	log := buf.String()
	assert.Contains(t, log, "Skipping git clone cell")
	assert.Contains(t, log, "Created "+output+" with 4 cells.")
}
