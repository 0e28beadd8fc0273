// Package update asks GitHub whether a newer release exists. The game only
// surfaces a hint on the start screen; installing is left to the player.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultRepo = "appengine-ltd/menu-sim"
	githubAPI   = "https://api.github.com"
)

// Result is what the start screen shows.
type Result struct {
	Latest    string
	Current   string
	Available bool
}

func (r Result) String() string {
	if r.Available {
		return fmt.Sprintf("Update available: v%s -> v%s", r.Current, r.Latest)
	}
	return fmt.Sprintf("Up to date (v%s)", r.Latest)
}

// Check fetches the latest release tag and compares it to currentVersion.
// Dev builds always report the latest tag without claiming an update.
func Check(ctx context.Context, currentVersion string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	rel, err := fetchLatestRelease(ctx, defaultRepo)
	if err != nil {
		return Result{}, err
	}

	latest := strings.TrimPrefix(rel.TagName, "v")
	current := strings.TrimPrefix(currentVersion, "v")
	res := Result{Latest: latest, Current: current}
	if current == "" || current == "dev" {
		return res, nil
	}
	res.Available = versionLess(current, latest)
	return res, nil
}

type githubRelease struct {
	TagName string `json:"tag_name"`
}

func fetchLatestRelease(ctx context.Context, repo string) (*githubRelease, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/releases/latest", githubAPI, repo)
	if err := validateHTTPSURL(endpoint, "api.github.com"); err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	req.Header.Set("Accept", "application/vnd.github+json")

	client := &http.Client{Timeout: 15 * time.Second}
	// #nosec G704 -- URL is fixed to api.github.com and validated above.
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("github latest release: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	var rel githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, err
	}
	if rel.TagName == "" {
		return nil, errors.New("latest release has no tag_name")
	}
	return &rel, nil
}

func validateHTTPSURL(raw, host string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !strings.EqualFold(parsed.Scheme, "https") {
		return fmt.Errorf("unsupported URL scheme: %s", parsed.Scheme)
	}
	if !strings.EqualFold(parsed.Hostname(), host) {
		return fmt.Errorf("unsupported URL host: %s", parsed.Hostname())
	}
	return nil
}

// versionLess reports whether a precedes b under semver ordering. A tag that
// does not parse sorts below every valid version, so a broken local build
// still sees the update hint.
func versionLess(a, b string) bool {
	return semver.Compare("v"+a, "v"+b) < 0
}
