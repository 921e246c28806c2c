package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yarwhq/yarw/internal/application/errors"
	"github.com/yarwhq/yarw/internal/application/dto"
	"github.com/yarwhq/yarw/internal/domain/entities"
	"github.com/yarwhq/yarw/internal/domain/values"
	"github.com/yarwhq/yarw/internal/infrastructure/persistence/memory"
)

type fakePrompter struct {
	answer      func(draft entities.Profile) entities.Profile
	drafts      []entities.Profile
	interactive bool
	confirm     bool
}

func (f *fakePrompter) IsInteractive() bool { return f.interactive }

func (f *fakePrompter) PromptProfile(draft entities.Profile) (entities.Profile, error) {
	f.drafts = append(f.drafts, draft)
	if f.answer == nil {
		return draft, nil
	}
	return f.answer(draft), nil
}

func (f *fakePrompter) Confirm(string) (bool, error) { return f.confirm, nil }

type harness struct {
	repo     *memory.SnapshotRepository
	prompter *fakePrompter
	config   string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{
		repo:     memory.NewSnapshotRepository(),
		prompter: &fakePrompter{},
		config:   filepath.Join(t.TempDir(), "config.yaml"),
	}
}

func (h *harness) run(args ...string) (string, string, error) {
	opts := &rootOptions{repo: h.repo, prompter: h.prompter, logOutput: io.Discard}
	cmd := newRootCmd(opts)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", h.config}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func (h *harness) list(t *testing.T) []dto.ProfileView {
	t.Helper()
	out, _, err := h.run("profile", "list", "--format", "json")
	require.NoError(t, err)
	var views []dto.ProfileView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	return views
}

func (h *harness) create(t *testing.T, args ...string) values.ProfileID {
	t.Helper()
	out, _, err := h.run(append([]string{"profile", "create"}, args...)...)
	require.NoError(t, err)
	start := strings.LastIndex(out, "(")
	end := strings.LastIndex(out, ")")
	require.True(t, start >= 0 && end > start, out)
	return values.MustParseProfileID(out[start+1 : end])
}

func TestProfileCreate_MainFastStart(t *testing.T) {
	h := newHarness(t)

	id := h.create(t, "--name", "Main", "--flag", "FFlagFastStart=true")
	assert.Equal(t, 1, h.repo.SaveCount())

	views := h.list(t)
	require.Len(t, views, 1)
	assert.Equal(t, id.String(), views[0].ID)
	assert.Equal(t, "Main", views[0].Name)
	assert.Equal(t, "player", views[0].Variant)
	assert.Equal(t, "d3d11", views[0].Renderer)
	require.Len(t, views[0].Flags, 1)
	assert.Equal(t, "FFlagFastStart", views[0].Flags[0].Name)
	assert.Equal(t, "bool", views[0].Flags[0].Kind)
	assert.Equal(t, true, views[0].Flags[0].Value)
}

func TestProfileCreate_ExplicitFields(t *testing.T) {
	h := newHarness(t)

	h.create(t, "--name", "Editor", "--variant", "studio", "--renderer", "vulkan",
		"--flag", "DFIntFps=int:144", "--flag", "Label=string:42")

	views := h.list(t)
	require.Len(t, views, 1)
	assert.Equal(t, "studio", views[0].Variant)
	assert.Equal(t, "vulkan", views[0].Renderer)
	require.Len(t, views[0].Flags, 2)
	assert.Equal(t, "DFIntFps", views[0].Flags[0].Name)
	assert.Equal(t, "int", views[0].Flags[0].Kind)
	assert.Equal(t, "Label", views[0].Flags[1].Name)
	assert.Equal(t, "string", views[0].Flags[1].Kind)
	assert.Equal(t, "42", views[0].Flags[1].Value)
}

func TestProfileCreate_InvalidFieldsRejected(t *testing.T) {
	h := newHarness(t)

	for _, args := range [][]string{
		{"--name", "X", "--variant", "server"},
		{"--name", "X", "--renderer", "metal"},
		{"--name", "X", "--flag", "=1"},
		{"--name", "X", "--flag", "Fps=int:fast"},
	} {
		_, _, err := h.run(append([]string{"profile", "create"}, args...)...)
		var vErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &vErr, args)
	}
	assert.Equal(t, 0, h.repo.SaveCount())
}

func TestProfileCreate_NoNameNonInteractive(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run("profile", "create")
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
	assert.Empty(t, h.prompter.drafts)
}

func TestProfileCreate_PromptsWhenInteractive(t *testing.T) {
	h := newHarness(t)
	h.prompter.interactive = true
	h.prompter.answer = func(draft entities.Profile) entities.Profile {
		draft.Name = "Prompted"
		draft.Renderer = values.RendererOpenGL
		return draft
	}

	h.create(t, "--variant", "studio")

	require.Len(t, h.prompter.drafts, 1)
	assert.Equal(t, values.VariantStudio, h.prompter.drafts[0].Variant)
	assert.Equal(t, values.DefaultRenderBackend, h.prompter.drafts[0].Renderer)

	views := h.list(t)
	require.Len(t, views, 1)
	assert.Equal(t, "Prompted", views[0].Name)
	assert.Equal(t, "opengl", views[0].Renderer)
}

func TestProfileList_Empty(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("profile", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No profiles found.")

	assert.Empty(t, h.list(t))
}

func TestProfileList_SortedByName(t *testing.T) {
	h := newHarness(t)
	h.create(t, "--name", "b")
	h.create(t, "--name", "a")
	h.create(t, "--name", "c")

	views := h.list(t)
	require.Len(t, views, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{views[0].Name, views[1].Name, views[2].Name})
}

func TestProfileList_InvalidFormat(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run("profile", "list", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestProfileShow(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, "--name", "Main")

	out, _, err := h.run("profile", "show", id.String(), "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Main")
	assert.Contains(t, out, id.String())

	_, _, err = h.run("profile", "show", values.NewProfileID().String())
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)

	_, _, err = h.run("profile", "show", "not-an-id")
	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestProfileUpdate(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, "--name", "Main", "--flag", "A=1", "--flag", "B=x")

	out, _, err := h.run("profile", "update", id.String(),
		"--renderer", "opengl", "--flag", "A=2", "--unset-flag", "B")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated profile")
	assert.Equal(t, 2, h.repo.SaveCount())

	views := h.list(t)
	require.Len(t, views, 1)
	assert.Equal(t, "Main", views[0].Name)
	assert.Equal(t, "opengl", views[0].Renderer)
	require.Len(t, views[0].Flags, 1)
	assert.Equal(t, "A", views[0].Flags[0].Name)
	assert.Equal(t, float64(2), views[0].Flags[0].Value)
}

func TestProfileUpdate_Missing(t *testing.T) {
	h := newHarness(t)
	h.create(t, "--name", "Main")

	_, _, err := h.run("profile", "update", values.NewProfileID().String(), "--name", "X")
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
	assert.Equal(t, 1, h.repo.SaveCount())
	assert.Len(t, h.list(t), 1)
}

func TestProfileDelete_ByID(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, "--name", "Main")
	keep := h.create(t, "--name", "Other")

	out, _, err := h.run("profile", "delete", "--id", id.String())
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted profile "+id.String())

	views := h.list(t)
	require.Len(t, views, 1)
	assert.Equal(t, keep.String(), views[0].ID)
}

func TestProfileDelete_MissingIsReported(t *testing.T) {
	h := newHarness(t)
	h.create(t, "--name", "Main")
	missing := values.NewProfileID()

	_, stderr, err := h.run("profile", "delete", "--id", missing.String())
	require.NoError(t, err)
	assert.Contains(t, stderr, "profile not found: "+missing.String())
	assert.Equal(t, 1, h.repo.SaveCount())
	assert.Len(t, h.list(t), 1)

	_, stderr, err = h.run("profile", "delete", "--name", "Nobody")
	require.NoError(t, err)
	assert.Contains(t, stderr, `No profile named "Nobody"`)
}

func TestProfileDelete_ByName(t *testing.T) {
	h := newHarness(t)
	h.create(t, "--name", "Main")
	h.create(t, "--name", "Main")
	h.create(t, "--name", "Other")

	_, _, err := h.run("profile", "delete", "--name", "Main")
	require.NoError(t, err)

	views := h.list(t)
	require.Len(t, views, 1)
	assert.Equal(t, "Other", views[0].Name)
}

func TestProfileDelete_ByNameDeclined(t *testing.T) {
	h := newHarness(t)
	h.prompter.interactive = true
	h.create(t, "--name", "Main")
	h.create(t, "--name", "Main")

	_, _, err := h.run("profile", "delete", "--name", "Main")
	require.NoError(t, err)
	assert.Len(t, h.list(t), 2)

	_, _, err = h.run("profile", "delete", "--name", "Main", "--yes")
	require.NoError(t, err)
	assert.Empty(t, h.list(t))
}

func TestProfileDelete_RequiresSelector(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run("profile", "delete")
	assert.Error(t, err)

	_, _, err = h.run("profile", "delete", "--id", values.NewProfileID().String(), "--name", "x")
	assert.Error(t, err)
}

func TestCLI_PersistsThroughLevelDB(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(t.TempDir(), "config.yaml")

	run := func(args ...string) string {
		cmd := newRootCmd(&rootOptions{logOutput: io.Discard})
		var stdout bytes.Buffer
		cmd.SetOut(&stdout)
		cmd.SetErr(io.Discard)
		cmd.SetArgs(append([]string{"--config", config, "--storage-dir", dir}, args...))
		require.NoError(t, cmd.Execute())
		return stdout.String()
	}

	run("profile", "create", "--name", "Main", "--flag", "FFlagFastStart=true")
	out := run("profile", "list", "--format", "json", "--compact")

	var views []dto.ProfileView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "Main", views[0].Name)
	assert.FileExists(t, filepath.Join(dir, "profiles", "CURRENT"))
}

func TestVersionCommand(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "yarw version "))

	out, _, err = h.run("version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}
