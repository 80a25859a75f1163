package refresh

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/altay/inkdash/internal/snapshot"
)

const banner = "// AUTO-GENERATED. DO NOT EDIT.\n"

// WeatherPayload is the on-disk weather shape: the normalized snapshot
// stamped with the fetch time.
type WeatherPayload struct {
	UpdatedAt time.Time `json:"updated_iso"`
	snapshot.Weather
}

// WriteFiles publishes the payloads under dir: a pretty-printed .json
// pair for consumers that can fetch, and a .js pair that assigns onto
// window.DASH_DATA for display firmware that can only inject script
// tags. Every file is rendered in memory first and written atomically,
// so readers never observe a torn or mismatched set.
func WriteFiles(dir string, weather WeatherPayload, markets snapshot.Markets) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	type file struct {
		name string
		body []byte
	}
	var files []file

	for _, p := range []struct {
		name string
		data any
	}{
		{name: "weather", data: weather},
		{name: "markets", data: markets},
	} {
		pretty, err := go_json.MarshalIndent(p.data, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding %s: %w", p.name, err)
		}
		compact, err := go_json.Marshal(p.data)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", p.name, err)
		}

		js := banner + "window.DASH_DATA = window.DASH_DATA || {}; window.DASH_DATA." +
			p.name + " = " + string(compact) + ";\n"

		files = append(files,
			file{name: p.name + ".json", body: append(pretty, '\n')},
			file{name: p.name + ".js", body: []byte(js)},
		)
	}

	for _, f := range files {
		if err := writeAtomic(filepath.Join(dir, f.name), f.body); err != nil {
			return err
		}
	}
	return nil
}

// writeAtomic writes via a temp file in the same directory and renames
// it into place.
func writeAtomic(path string, body []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("renaming %s: %w", path, err)
	}
	return nil
}
