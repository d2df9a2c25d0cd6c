package pip

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pipctl/pipctl/src/internal/procrun"
)

// freezeHandler scripts the two pip probes that Freeze performs.
func freezeHandler(versionExit int, versionOut []string, freezeExit int, freezeOut []string) func(procrun.Spec) (*procrun.Result, error) {
	return func(spec procrun.Spec) (*procrun.Result, error) {
		switch lastArg(spec) {
		case "--version":
			return &procrun.Result{ExitCode: versionExit, Stdout: versionOut}, nil
		case "freeze":
			return &procrun.Result{ExitCode: freezeExit, Stdout: freezeOut}, nil
		}
		return &procrun.Result{ExitCode: 1}, nil
	}
}

func TestFreeze_SuccessPathUnionsSeed(t *testing.T) {
	cfg := testConfig(t)
	runner := &fakeRunner{handler: freezeHandler(
		0, []string{"pip 21.3.1 from /lib/python3.11/site-packages/pip (python 3.11)"},
		0, []string{"requests==2.28.1"},
	)}
	mgr := NewManager(runner, nil, nil)

	set := mgr.Freeze(context.Background(), cfg)

	want := PackageSet{"pip==21.3.1": {}, "requests==2.28.1": {}}
	if !set.Equal(want) {
		t.Errorf("Freeze() = %v, want %v", set.Sorted(), want.Sorted())
	}
}

func TestFreeze_ScanDiscardsSeed(t *testing.T) {
	// version succeeds, freeze fails: the directory scan takes over and the
	// seeded pip entry must not survive.
	cfg := testConfig(t)
	addSitePackages(t, cfg, "requests-2.28.1", "numpy-1.23.0")
	runner := &fakeRunner{handler: freezeHandler(
		0, []string{"pip 21.3.1"},
		1, nil,
	)}
	mgr := NewManager(runner, nil, nil)

	set := mgr.Freeze(context.Background(), cfg)

	want := PackageSet{"requests": {}, "numpy": {}}
	if !set.Equal(want) {
		t.Errorf("Freeze() = %v, want %v", set.Sorted(), want.Sorted())
	}
}

func TestFreeze_VersionFailureIsNonFatal(t *testing.T) {
	cfg := testConfig(t)
	runner := &fakeRunner{handler: freezeHandler(
		1, nil,
		0, []string{"requests==2.28.1"},
	)}
	mgr := NewManager(runner, nil, nil)

	set := mgr.Freeze(context.Background(), cfg)

	want := PackageSet{"requests==2.28.1": {}}
	if !set.Equal(want) {
		t.Errorf("Freeze() = %v, want %v", set.Sorted(), want.Sorted())
	}
}

func TestFreeze_EverythingBrokenYieldsEmptySet(t *testing.T) {
	tests := []struct {
		name    string
		handler func(procrun.Spec) (*procrun.Result, error)
	}{
		{
			name: "tool exits non-zero",
			handler: func(procrun.Spec) (*procrun.Result, error) {
				return &procrun.Result{ExitCode: 1}, nil
			},
		},
		{
			name: "tool cannot run at all",
			handler: func(procrun.Spec) (*procrun.Result, error) {
				return nil, errors.New("spawn failed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No site-packages directory exists either: the scan error is
			// swallowed and an empty set comes back.
			cfg := testConfig(t)
			mgr := NewManager(&fakeRunner{handler: tt.handler}, nil, nil)

			set := mgr.Freeze(context.Background(), cfg)

			if len(set) != 0 {
				t.Errorf("Freeze() = %v, want empty set", set.Sorted())
			}
		})
	}
}

func TestFreeze_Idempotent(t *testing.T) {
	cfg := testConfig(t)
	runner := &fakeRunner{handler: freezeHandler(
		0, []string{"pip 21.3.1"},
		0, []string{"requests==2.28.1", "flask==2.2.0"},
	)}
	mgr := NewManager(runner, nil, nil)

	first := mgr.Freeze(context.Background(), cfg)
	second := mgr.Freeze(context.Background(), cfg)

	if !first.Equal(second) {
		t.Errorf("consecutive Freeze() calls differ: %v vs %v", first.Sorted(), second.Sorted())
	}
}

func TestFreeze_ScanSkipsFiles(t *testing.T) {
	cfg := testConfig(t)
	addSitePackages(t, cfg, "requests-2.28.1")
	touch(t, filepath.Join(cfg.SitePackages(), "six.py"))
	runner := &fakeRunner{handler: freezeHandler(1, nil, 1, nil)}
	mgr := NewManager(runner, nil, nil)

	set := mgr.Freeze(context.Background(), cfg)

	want := PackageSet{"requests": {}}
	if !set.Equal(want) {
		t.Errorf("Freeze() = %v, want %v", set.Sorted(), want.Sorted())
	}
}

func TestPackageSet(t *testing.T) {
	set := make(PackageSet)
	set.Add("b==2")
	set.Add("a==1")
	set.Add("a==1") // duplicate
	set.Add("")     // ignored

	if len(set) != 2 {
		t.Fatalf("len = %d, want 2", len(set))
	}
	sorted := set.Sorted()
	if sorted[0] != "a==1" || sorted[1] != "b==2" {
		t.Errorf("Sorted() = %v", sorted)
	}
	if !set.Has("a==1") || set.Has("c==3") {
		t.Error("Has() misbehaves")
	}
}
