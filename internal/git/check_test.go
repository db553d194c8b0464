package git

import (
	"reflect"
	"testing"
)

func TestGitArgs(t *testing.T) {
	t.Parallel()

	t.Run("empty dir leaves args unchanged", func(t *testing.T) {
		t.Parallel()
		got := gitArgs("", []string{"rev-parse", "--git-dir"})
		want := []string{"rev-parse", "--git-dir"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("gitArgs = %v, want %v", got, want)
		}
	})

	t.Run("dir prepends -C", func(t *testing.T) {
		t.Parallel()
		got := gitArgs("/repo", []string{"branch", "--show-current"})
		want := []string{"-C", "/repo", "branch", "--show-current"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("gitArgs = %v, want %v", got, want)
		}
	})
}

func TestCheckGit(t *testing.T) {
	t.Parallel()

	// git is a hard requirement of the test environment itself.
	if err := CheckGit(); err != nil {
		t.Errorf("CheckGit() = %v, want nil", err)
	}
}
