package walk

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// makeTree creates root/{a.txt,b.txt,sub/c.txt} and returns root.
func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", filepath.Join("sub", "c.txt")} {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(name), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return root
}

func sorted(vs []string) []string {
	out := slices.Clone(vs)
	slices.Sort(out)
	return out
}

func TestDiscover(t *testing.T) {
	root := makeTree(t)

	got := Discover(root).Values()
	want := []string{
		root,
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.txt"),
		filepath.Join(root, "sub"),
		filepath.Join(root, "sub", "c.txt"),
	}
	if len(got) != len(want) {
		t.Fatalf("Discover() returned %d paths, want %d: %v", len(got), len(want), got)
	}
	if got[0] != root {
		t.Fatalf("first path = %q, want root %q", got[0], root)
	}
	if !slices.Equal(sorted(got), sorted(want)) {
		t.Fatalf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscoverPreOrder(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"x/y/z", "w"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "x", "y", "f"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got := Discover(root).Values()
	index := func(p string) int {
		i := slices.Index(got, filepath.Join(root, p))
		if i < 0 {
			t.Fatalf("%s missing from %v", p, got)
		}
		return i
	}

	// Every directory precedes its descendants, and each subtree is
	// contiguous.
	x, y, z, f, w := index("x"), index("x/y"), index("x/y/z"), index("x/y/f"), index("w")
	if !(x < y && y < z && y < f) {
		t.Fatalf("directories not listed before contents: %v", got)
	}
	if w > x && w < max(z, f) {
		t.Fatalf("sibling %q interleaved with subtree of x: %v", "w", got)
	}
	if len(got) != 6 {
		t.Fatalf("got %d paths, want 6: %v", len(got), got)
	}
}

func TestDiscoverFileRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	var errs []string
	got := Walk(path, Options{OnError: func(p string, _ error) { errs = append(errs, p) }}).Values()
	if !slices.Equal(got, []string{path}) {
		t.Fatalf("Walk(file) = %v, want only the file", got)
	}
	if len(errs) != 0 {
		t.Fatalf("plain-file root reported errors: %v", errs)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nope")

	var errs []string
	got := Walk(root, Options{OnError: func(p string, _ error) { errs = append(errs, p) }}).Values()
	if !slices.Equal(got, []string{root}) {
		t.Fatalf("Walk(missing) = %v, want only the root", got)
	}
	if !slices.Equal(errs, []string{root}) {
		t.Fatalf("OnError calls = %v, want [%s]", errs, root)
	}
}

func TestDiscoverUnreadableSubdir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	root := makeTree(t)
	sub := filepath.Join(root, "sub")
	if err := os.Chmod(sub, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(sub, 0o755) })

	var errs []string
	got := Walk(root, Options{OnError: func(p string, _ error) { errs = append(errs, p) }}).Values()

	if !slices.Contains(got, sub) {
		t.Fatalf("unreadable directory itself missing: %v", got)
	}
	if slices.Contains(got, filepath.Join(sub, "c.txt")) {
		t.Fatalf("contents of unreadable directory listed: %v", got)
	}
	if len(got) != 4 {
		t.Fatalf("got %d paths, want 4: %v", len(got), got)
	}
	if !slices.Equal(errs, []string{sub}) {
		t.Fatalf("OnError calls = %v, want [%s]", errs, sub)
	}
}

// failDir makes listDir fail for dir, returning partial entries alongside
// the error if keep is set.
func failDir(t *testing.T, dir string, keep bool) {
	t.Helper()
	orig := listDir
	listDir = func(d string) ([]fs.DirEntry, error) {
		if d != dir {
			return orig(d)
		}
		denied := &fs.PathError{Op: "open", Path: d, Err: fs.ErrPermission}
		if !keep {
			return nil, denied
		}
		entries, err := orig(d)
		if err != nil {
			t.Fatalf("reading %s: %v", d, err)
		}
		return entries[:1], denied
	}
	t.Cleanup(func() { listDir = orig })
}

func TestWalkReadFailure(t *testing.T) {
	tests := []struct {
		name string
		keep bool
		want int
	}{
		{name: "open fails", want: 4},
		{name: "partial read", keep: true, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := makeTree(t)
			sub := filepath.Join(root, "sub")
			failDir(t, sub, tt.keep)

			var errs []error
			got := Walk(root, Options{OnError: func(p string, err error) {
				if p != sub {
					t.Fatalf("OnError(%q), want %q", p, sub)
				}
				errs = append(errs, err)
			}}).Values()

			if len(got) != tt.want {
				t.Fatalf("got %d paths, want %d: %v", len(got), tt.want, got)
			}
			if !slices.Contains(got, sub) {
				t.Fatalf("failing directory itself missing: %v", got)
			}
			if len(errs) != 1 || !errors.Is(errs[0], fs.ErrPermission) {
				t.Fatalf("OnError errors = %v, want one permission error", errs)
			}
		})
	}
}

func TestDiscoverDoesNotFollowSymlinks(t *testing.T) {
	root := makeTree(t)
	link := filepath.Join(root, "link")
	if err := os.Symlink(filepath.Join(root, "sub"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got := Discover(root).Values()
	if !slices.Contains(got, link) {
		t.Fatalf("symlink missing: %v", got)
	}
	if slices.Contains(got, filepath.Join(link, "c.txt")) {
		t.Fatalf("walk followed symlink: %v", got)
	}
	if len(got) != 6 {
		t.Fatalf("got %d paths, want 6: %v", len(got), got)
	}
}

func TestWalkOnPath(t *testing.T) {
	root := makeTree(t)
	var seen []string
	got := Walk(root, Options{OnPath: func(p string) { seen = append(seen, p) }}).Values()
	if !slices.Equal(seen, got) {
		t.Fatalf("OnPath saw %v, result %v", seen, got)
	}
}

func TestJoin(t *testing.T) {
	sep := string(os.PathSeparator)
	tests := []struct {
		dir, name, want string
	}{
		{".", "a", "." + sep + "a"},
		{"dir", "a", "dir" + sep + "a"},
		{"dir" + sep, "a", "dir" + sep + "a"},
		{"/", "etc", "/etc"},
	}
	for _, tt := range tests {
		if got := join(tt.dir, tt.name); got != tt.want {
			t.Fatalf("join(%q, %q) = %q, want %q", tt.dir, tt.name, got, tt.want)
		}
	}
}
