package glp

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/saadjs/glp-cli/internal/app"
	"github.com/saadjs/glp-cli/internal/db"
	"github.com/saadjs/glp-cli/internal/provider/gemini"
	"github.com/saadjs/glp-cli/internal/state"
	"github.com/saadjs/glp-cli/internal/tracker"
)

func resolveDBPath() (string, error) {
	if strings.TrimSpace(dbPath) != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func withTracker(run func(*tracker.Tracker) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	tr, err := tracker.Load(state.New(sqldb), nil)
	if err != nil {
		return err
	}
	return run(tr)
}

// geminiClient resolves the API key: .env / environment first, then the key
// stored with `glp config key`.
func geminiClient(tr *tracker.Tracker) (*gemini.Client, error) {
	_ = godotenv.Load()
	key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if key == "" {
		stored, found, err := tr.GeminiKey()
		if err != nil {
			return nil, err
		}
		if found {
			key = strings.TrimSpace(stored)
		}
	}
	if key == "" {
		return nil, fmt.Errorf("no Gemini API key: set GEMINI_API_KEY or run `glp config key <key>`")
	}
	return &gemini.Client{APIKey: key}, nil
}

func parseIntArg(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

func parseFloatArg(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

func imageMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
