package adapter

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/commitkind/commitkind/internal/model"
)

func TestParseNameStatusZ(t *testing.T) {
	out := "M\x00pkg/client.py\x00A\x00pkg/new.py\x00D\x00old.py\x00R087\x00a.py\x00b.py\x00C100\x00src.py\x00copy.py\x00T\x00link.py\x00"

	records, err := parseNameStatusZ(out)
	require.NoError(t, err)

	assert.Equal(t, []m.ChangeRecord{
		{Path: "pkg/client.py", Kind: m.ChangeModified},
		{Path: "pkg/new.py", Kind: m.ChangeAdded},
		{Path: "old.py", Kind: m.ChangeDeleted},
		{Path: "b.py", OldPath: "a.py", Kind: m.ChangeRenamed},
		{Path: "copy.py", Kind: m.ChangeAdded},
		{Path: "link.py", Kind: m.ChangeModified},
	}, records)
}

func TestParseNameStatusZ_Empty(t *testing.T) {
	records, err := parseNameStatusZ("")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseNameStatusZ_Malformed(t *testing.T) {
	_, err := parseNameStatusZ("M")
	assert.Error(t, err)

	_, err = parseNameStatusZ("R100\x00a.py")
	assert.Error(t, err)
}

func TestMissingPaths(t *testing.T) {
	want := []m.ChangeRecord{
		{Path: "a.py", Kind: m.ChangeModified},
		{Path: "b.py", OldPath: "old_b.py", Kind: m.ChangeRenamed},
	}
	got := []m.ChangeRecord{{Path: "a.py", Kind: m.ChangeModified}}

	assert.Equal(t, []string{"old_b.py", "b.py"}, missingPaths(want, got))
	assert.Empty(t, missingPaths(got, got))
}

func TestGitVersionControl_ShelveAndRestore(t *testing.T) {
	repo := newTestRepo(t)
	repo.write("keep.py", "def keep(a):\n    pass\n")
	repo.write("gone.py", "class Gone:\n    def first(self):\n        return 1\n\n    def second(self):\n        return 2\n")
	repo.write("moved.py", "class Moved:\n    def run(self):\n        pass\n")
	repo.commit("initial")

	repo.write("keep.py", "def keep(a, b):\n    pass\n")
	repo.write("fresh.py", "import os\n\nSEPARATOR = os.sep\n")
	repo.git("mv", "moved.py", "renamed.py")
	repo.git("rm", "-q", "gone.py")
	repo.git("add", "keep.py", "fresh.py")

	// An unstaged edit on top of the staged one must survive too.
	repo.write("keep.py", "def keep(a, b, c=1):\n    pass\n")

	vc, err := NewGitVersionControl(m.Path(repo.dir), 0)
	require.NoError(t, err)

	ctx := context.Background()

	before, err := vc.ListChangedPaths(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []m.ChangeRecord{
		{Path: "keep.py", Kind: m.ChangeModified},
		{Path: "fresh.py", Kind: m.ChangeAdded},
		{Path: "gone.py", Kind: m.ChangeDeleted},
		{Path: "renamed.py", OldPath: "moved.py", Kind: m.ChangeRenamed},
	}, before)

	token, err := vc.ShelveAndRewind(ctx)
	require.NoError(t, err)
	assert.False(t, token.Empty)
	assert.Equal(t, before, token.Records)

	assert.Equal(t, "def keep(a):\n    pass\n", repo.read("keep.py"))
	assert.FileExists(t, filepath.Join(repo.dir, "gone.py"))
	assert.FileExists(t, filepath.Join(repo.dir, "moved.py"))
	assert.NoFileExists(t, filepath.Join(repo.dir, "fresh.py"))

	rewound, err := vc.ListChangedPaths(ctx)
	require.NoError(t, err)
	assert.Empty(t, rewound)

	require.NoError(t, vc.RestoreFromShelve(ctx, token))

	after, err := vc.ListChangedPaths(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, "def keep(a, b, c=1):\n    pass\n", repo.read("keep.py"))

	ref, err := vc.findStash(ctx, token.ID)
	require.NoError(t, err)
	assert.Empty(t, ref, "the shelve must not outlive the run")
}

func TestGitVersionControl_ShelveCleanTree(t *testing.T) {
	repo := newTestRepo(t)
	repo.write("a.py", "x = 1\n")
	repo.commit("initial")

	vc, err := NewGitVersionControl(m.Path(repo.dir), 0)
	require.NoError(t, err)

	token, err := vc.ShelveAndRewind(context.Background())
	require.NoError(t, err)
	assert.True(t, token.Empty)
	assert.NoError(t, vc.RestoreFromShelve(context.Background(), token))
}

func TestGitVersionControl_RestoreLeavesUserStashesAlone(t *testing.T) {
	repo := newTestRepo(t)
	repo.write("a.py", "x = 1\n")
	repo.commit("initial")

	// A stash the user made earlier.
	repo.write("a.py", "x = 2\n")
	repo.git("stash", "push", "--message", "user work")

	repo.write("a.py", "x = 3\n")
	repo.git("add", "a.py")

	vc, err := NewGitVersionControl(m.Path(repo.dir), 0)
	require.NoError(t, err)

	token, err := vc.ShelveAndRewind(context.Background())
	require.NoError(t, err)
	require.NoError(t, vc.RestoreFromShelve(context.Background(), token))

	assert.Equal(t, "x = 3\n", repo.read("a.py"))

	ref, err := vc.findStash(context.Background(), "user work")
	require.NoError(t, err)
	assert.Equal(t, "stash@{0}", ref)
}

func TestGitVersionControl_RestoreUnknownToken(t *testing.T) {
	repo := newTestRepo(t)
	repo.write("a.py", "x = 1\n")
	repo.commit("initial")

	vc, err := NewGitVersionControl(m.Path(repo.dir), 0)
	require.NoError(t, err)

	err = vc.RestoreFromShelve(context.Background(), ShelveToken{ID: shelvePrefix + "missing"})
	assert.Error(t, err)
}

func TestGitVersionControl_ShelveUnconfirmedAfterPush(t *testing.T) {
	repo := newTestRepo(t)
	repo.write("keep.py", "def keep(a):\n    pass\n")
	repo.commit("initial")

	repo.write("keep.py", "def keep(a, b):\n    pass\n")
	repo.git("add", "keep.py")

	failStashList := failingGitStashList(t)

	vc, err := NewGitVersionControl(m.Path(repo.dir), 0)
	require.NoError(t, err)

	ctx := context.Background()

	before, err := vc.ListChangedPaths(ctx)
	require.NoError(t, err)

	failStashList(true)

	token, err := vc.ShelveAndRewind(ctx)
	require.ErrorIs(t, err, ErrShelveUnconfirmed)
	assert.NotEmpty(t, token.ID, "the token must allow restoring")
	assert.False(t, token.Empty)
	assert.Equal(t, before, token.Records)
	assert.Equal(t, "def keep(a):\n    pass\n", repo.read("keep.py"), "the push went through")

	failStashList(false)

	require.NoError(t, vc.RestoreFromShelve(ctx, token))

	after, err := vc.ListChangedPaths(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, "def keep(a, b):\n    pass\n", repo.read("keep.py"))
}

func TestGitVersionControl_ShelveCanceledBeforePush(t *testing.T) {
	repo := newTestRepo(t)
	repo.write("a.py", "x = 1\n")
	repo.commit("initial")

	repo.write("a.py", "x = 2\n")
	repo.git("add", "a.py")

	vc, err := NewGitVersionControl(m.Path(repo.dir), 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = vc.ShelveAndRewind(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrShelveUnconfirmed)
	assert.Equal(t, "x = 2\n", repo.read("a.py"))
}

func TestNewGitVersionControl_RepoPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	vc, err := NewGitVersionControl(".", 0)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, m.Path(wd), vc.RepoPath())
	assert.True(t, filepath.IsAbs(string(vc.RepoPath())))
	assert.Equal(t, DefaultGitTimeout, vc.timeout)
}

func TestGitVersionControl_NotARepository(t *testing.T) {
	requireGit(t)

	vc, err := NewGitVersionControl(m.Path(t.TempDir()), 0)
	require.NoError(t, err)

	_, err = vc.ListChangedPaths(context.Background())
	assert.Error(t, err)
}

type testRepo struct {
	t   *testing.T
	dir string
}

func requireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	requireGit(t)

	r := &testRepo{t: t, dir: t.TempDir()}
	r.git("init", "-q")
	r.git("config", "user.name", "commitkind test")
	r.git("config", "user.email", "test@example.com")
	r.git("config", "commit.gpgsign", "false")

	return r
}

func (r *testRepo) git(args ...string) {
	r.t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir

	out, err := cmd.CombinedOutput()
	require.NoError(r.t, err, "git %v: %s", args, out)
}

func (r *testRepo) write(name, content string) {
	r.t.Helper()

	path := filepath.Join(r.dir, name)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(r.t, os.WriteFile(path, []byte(content), 0o644))
}

func (r *testRepo) read(name string) string {
	r.t.Helper()

	data, err := os.ReadFile(filepath.Join(r.dir, name))
	require.NoError(r.t, err)

	return string(data)
}

func (r *testRepo) commit(message string) {
	r.t.Helper()
	r.git("add", "-A")
	r.git("commit", "-q", "-m", message)
}

// failingGitStashList puts a git wrapper first on PATH that fails
// `git stash list` while the returned switch is on.
func failingGitStashList(t *testing.T) func(on bool) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell wrapper needs a POSIX shell")
	}

	realGit, err := exec.LookPath("git")
	require.NoError(t, err)

	dir := t.TempDir()
	marker := filepath.Join(dir, "fail-stash-list")

	script := "#!/bin/sh\n" +
		"if [ \"$1\" = stash ] && [ \"$2\" = list ] && [ -f '" + marker + "' ]; then\n" +
		"  echo 'fatal: stash list unavailable' >&2\n" +
		"  exit 1\n" +
		"fi\n" +
		"exec '" + realGit + "' \"$@\"\n"

	require.NoError(t, os.WriteFile(filepath.Join(dir, "git"), []byte(script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	return func(on bool) {
		if on {
			require.NoError(t, os.WriteFile(marker, nil, 0o644))
			return
		}

		require.NoError(t, os.Remove(marker))
	}
}
