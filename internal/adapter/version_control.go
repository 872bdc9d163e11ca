package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	m "github.com/commitkind/commitkind/internal/model"
)

// DefaultGitTimeout bounds every single git invocation.
const DefaultGitTimeout = 30 * time.Second

const shelvePrefix = "commitkind-shelve-"

// ShelveToken identifies the shelve created by ShelveAndRewind. It is only
// meaningful to the VersionControl that created it.
type ShelveToken struct {
	// ID is the message the shelve was recorded under.
	ID string
	// Records is the change list observed right before shelving; restoring
	// must reproduce it.
	Records []m.ChangeRecord
	// Empty is true when there was nothing to shelve.
	Empty bool
}

// VersionControl abstracts the three version-control capabilities the
// classification run needs. Implementations never expose their internals.
type VersionControl interface {
	// ListChangedPaths returns the pending (staged) change set relative to
	// the last commit, in the order the VCS reports it.
	ListChangedPaths(ctx context.Context) ([]m.ChangeRecord, error)

	// ShelveAndRewind records all uncommitted modifications as one
	// recoverable unit and resets the working tree to the last commit.
	ShelveAndRewind(ctx context.Context) (ShelveToken, error)

	// RestoreFromShelve reapplies the shelve on top of the rewound tree and
	// re-stages the paths recorded in the token.
	RestoreFromShelve(ctx context.Context, token ShelveToken) error
}

// GitVersionControl implements VersionControl using the git command line.
// Shelving is done with `git stash`, keyed by a unique message so restore
// never pops a stash entry the user created.
type GitVersionControl struct {
	repoPath string
	timeout  time.Duration
	newID    func() string
}

// NewGitVersionControl creates a git adapter for the repository at repoPath.
func NewGitVersionControl(repoPath m.Path, timeout time.Duration) (*GitVersionControl, error) {
	abs, err := filepath.Abs(string(repoPath))
	if err != nil {
		return nil, fmt.Errorf("resolving repository path %s: %w", repoPath, err)
	}

	if timeout <= 0 {
		timeout = DefaultGitTimeout
	}

	return &GitVersionControl{
		repoPath: abs,
		timeout:  timeout,
		newID:    uuid.NewString,
	}, nil
}

// RepoPath returns the absolute repository root this adapter operates on.
func (g *GitVersionControl) RepoPath() m.Path {
	return m.Path(g.repoPath)
}

// run executes a git command and returns its stdout.
func (g *GitVersionControl) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.repoPath

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running git", "args", args, "dir", g.repoPath)

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("git %s: timeout after %v", args[0], g.timeout)
		}

		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

// ListChangedPaths lists staged changes against HEAD, with rename detection.
func (g *GitVersionControl) ListChangedPaths(ctx context.Context) ([]m.ChangeRecord, error) {
	out, err := g.run(ctx, "diff", "--cached", "--name-status", "-M", "-z", "HEAD")
	if err != nil {
		return nil, fmt.Errorf("listing staged changes: %w", err)
	}

	return parseNameStatusZ(out)
}

// parseNameStatusZ parses `git diff --name-status -z` output. Entries are
// NUL separated: status, path, and for renames/copies a second path.
func parseNameStatusZ(output string) ([]m.ChangeRecord, error) {
	fields := strings.Split(output, "\x00")

	var records []m.ChangeRecord

	for i := 0; i < len(fields); i++ {
		status := fields[i]
		if status == "" {
			continue
		}

		if i+1 >= len(fields) {
			return nil, fmt.Errorf("malformed name-status output: status %q without path", status)
		}

		i++
		path := fields[i]

		switch status[0] {
		case 'A':
			records = append(records, m.ChangeRecord{Path: m.Path(filepath.ToSlash(path)), Kind: m.ChangeAdded})
		case 'D':
			records = append(records, m.ChangeRecord{Path: m.Path(filepath.ToSlash(path)), Kind: m.ChangeDeleted})
		case 'R':
			if i+1 >= len(fields) {
				return nil, fmt.Errorf("malformed name-status output: rename of %q without target", path)
			}

			i++
			records = append(records, m.ChangeRecord{
				Path:    m.Path(filepath.ToSlash(fields[i])),
				OldPath: m.Path(filepath.ToSlash(path)),
				Kind:    m.ChangeRenamed,
			})
		case 'C':
			if i+1 >= len(fields) {
				return nil, fmt.Errorf("malformed name-status output: copy of %q without target", path)
			}

			i++
			// A copy leaves the source in place; the target is new.
			records = append(records, m.ChangeRecord{Path: m.Path(filepath.ToSlash(fields[i])), Kind: m.ChangeAdded})
		default:
			records = append(records, m.ChangeRecord{Path: m.Path(filepath.ToSlash(path)), Kind: m.ChangeModified})
		}
	}

	return records, nil
}

// ErrShelveUnconfirmed is returned by ShelveAndRewind, together with a usable
// token, when the changes may already sit in the shelve but that could not be
// confirmed. The caller must restore from the token before giving up.
var ErrShelveUnconfirmed = errors.New("changes may have been shelved")

// ShelveAndRewind stashes staged and unstaged modifications of tracked files
// under a unique message, leaving the tree at HEAD.
//
// Cancellation is honored only until the stash is pushed. From then on the
// tree may already be rewound, so the remaining steps ignore ctx's
// cancellation and any failure comes back as ErrShelveUnconfirmed.
func (g *GitVersionControl) ShelveAndRewind(ctx context.Context) (ShelveToken, error) {
	records, err := g.ListChangedPaths(ctx)
	if err != nil {
		return ShelveToken{}, err
	}

	if err := ctx.Err(); err != nil {
		return ShelveToken{}, err
	}

	ctx = context.WithoutCancel(ctx)
	token := ShelveToken{ID: shelvePrefix + g.newID(), Records: records}

	_, pushErr := g.run(ctx, "stash", "push", "--message", token.ID)

	ref, listErr := g.findStash(ctx, token.ID)

	switch {
	case pushErr != nil && listErr == nil && ref == "":
		return ShelveToken{}, fmt.Errorf("stashing changes: %w", pushErr)
	case pushErr != nil:
		// A timed out push can still have completed.
		return token, fmt.Errorf("%w: stashing changes: %w", ErrShelveUnconfirmed, pushErr)
	case listErr != nil:
		return token, fmt.Errorf("%w: %w", ErrShelveUnconfirmed, listErr)
	case ref == "":
		// git exits 0 with "No local changes to save" and creates nothing.
		slog.Info("nothing to shelve, tree already at last commit")

		token.Empty = true

		return token, nil
	}

	slog.Info("shelved pending changes", "stash", ref, "id", token.ID, "paths", len(records))

	return token, nil
}

// RestoreFromShelve pops the stash recorded in token, restoring the index
// as well, then re-stages any recorded path git did not bring back staged.
func (g *GitVersionControl) RestoreFromShelve(ctx context.Context, token ShelveToken) error {
	if token.Empty {
		return nil
	}

	ref, err := g.findStash(ctx, token.ID)
	if err != nil {
		return err
	}

	if ref == "" {
		return fmt.Errorf("shelve %s not found in stash list", token.ID)
	}

	if _, err := g.run(ctx, "stash", "pop", "--index", ref); err != nil {
		return fmt.Errorf("popping %s (%s): %w", ref, token.ID, err)
	}

	current, err := g.ListChangedPaths(ctx)
	if err != nil {
		return fmt.Errorf("verifying restored changes: %w", err)
	}

	missing := missingPaths(token.Records, current)
	if len(missing) == 0 {
		return nil
	}

	slog.Warn("re-staging paths not restored to the index", "paths", missing)

	args := append([]string{"add", "-A", "--"}, missing...)
	if _, err := g.run(ctx, args...); err != nil {
		return fmt.Errorf("re-staging %v: %w", missing, err)
	}

	return nil
}

// findStash returns the stash ref (stash@{n}) whose subject ends with id,
// or "" when there is none.
func (g *GitVersionControl) findStash(ctx context.Context, id string) (string, error) {
	out, err := g.run(ctx, "stash", "list", "--format=%gd%x09%s")
	if err != nil {
		return "", fmt.Errorf("listing stashes: %w", err)
	}

	for _, line := range strings.Split(out, "\n") {
		ref, subject, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}

		if strings.HasSuffix(strings.TrimSpace(subject), id) {
			return ref, nil
		}
	}

	return "", nil
}

// missingPaths returns the paths of want that are absent from got, including
// the source side of renames.
func missingPaths(want, got []m.ChangeRecord) []string {
	present := make(map[m.ChangeRecord]struct{}, len(got))
	for _, record := range got {
		present[record] = struct{}{}
	}

	var paths []string

	for _, record := range want {
		if _, ok := present[record]; ok {
			continue
		}

		if record.OldPath != "" {
			paths = append(paths, string(record.OldPath))
		}

		paths = append(paths, string(record.Path))
	}

	return paths
}
