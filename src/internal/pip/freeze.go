package pip

import (
	"context"
	"os"
	"regexp"

	"github.com/pipctl/pipctl/src/internal/interp"
)

var (
	// pip --version prints e.g. "pip 21.3.1 from /usr/lib/python3/...".
	toolVersionRe = regexp.MustCompile(`\bpip (\d[\d.]*)`)

	// Distribution directories look like "requests-2.28.1.dist-info" or
	// "numpy-1.23.0"; the leading token is the package name.
	distNameRe = regexp.MustCompile(`^([A-Za-z0-9_]+)`)
)

// Freeze enumerates the packages installed in cfg's environment. It never
// fails: strategies are tried in order and the last one degrades to an empty
// set. The result is rebuilt from scratch on every call.
//
// Order of strategies:
//  1. "pip --version" seeds a synthetic "pip==<version>" entry (failure here
//     is non-fatal);
//  2. "pip freeze" supplies the authoritative listing, unioned with the seed;
//  3. if freeze fails, the seed is discarded and site-packages directory
//     names give a best-effort inventory of bare names.
func (m *Manager) Freeze(ctx context.Context, cfg interp.Config) PackageSet {
	set := make(PackageSet)
	inv := Locate(cfg)

	if res, err := m.run(ctx, cfg, inv, nil, false, "--version"); err == nil && res.ExitCode == 0 {
		for _, line := range res.Stdout {
			if match := toolVersionRe.FindStringSubmatch(line); match != nil {
				set.Add("pip==" + match[1])
				break
			}
		}
	}

	if res, err := m.run(ctx, cfg, inv, nil, false, "freeze"); err == nil && res.ExitCode == 0 {
		for _, line := range res.Stdout {
			set.Add(line)
		}
		return set
	}

	return scanSitePackages(cfg)
}

// scanSitePackages is the degraded path: directory names under site-packages
// approximate the installed set. Enumeration errors yield an empty set.
func scanSitePackages(cfg interp.Config) PackageSet {
	set := make(PackageSet)
	entries, err := os.ReadDir(cfg.SitePackages())
	if err != nil {
		return set
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if match := distNameRe.FindStringSubmatch(entry.Name()); match != nil {
			set.Add(match[1])
		}
	}
	return set
}
