package aoc

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const year = 2025

// session returns the adventofcode.com session cookie from AOC_SESSION,
// also honoring a .env file in the working directory.
var session = sync.OnceValue(func() string {
	_ = godotenv.Load()
	return strings.TrimSpace(os.Getenv("AOC_SESSION"))
})

// FetchInput downloads the real input for day from adventofcode.com and
// caches it at path. It requires a session cookie, since real inputs are
// assigned per participant.
func FetchInput(day int, path string) (string, error) {
	tok := session()
	if tok == "" {
		return "", fmt.Errorf("no input file at %s and AOC_SESSION is not set", path)
	}

	url := fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", year, day)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: tok})

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", err
	}
	return string(body), nil
}
