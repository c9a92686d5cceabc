package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/sandeepkv93/baringwidget/internal/snapshot"
	"gopkg.in/yaml.v3"
)

// LoadSnapshotFile reads a host snapshot document. YAML and JSON are both
// accepted. A list or mapping under widget_items_json is re-encoded to the
// JSON string the widget expects.
func LoadSnapshotFile(path string) (snapshot.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("read snapshot file: %w", err)
	}
	return ParseSnapshotDocument(raw)
}

func ParseSnapshotDocument(raw []byte) (snapshot.Snapshot, error) {
	doc := make(map[string]any)
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("parse snapshot document: %w", err)
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b := snapshot.NewBuilder()
	for _, key := range keys {
		// null means the host wrote no value; the decoder falls back to its default.
		if doc[key] == nil {
			continue
		}
		value, err := documentValue(key, doc[key])
		if err != nil {
			return snapshot.Snapshot{}, err
		}
		b.Set(key, value)
	}
	return b.Build(), nil
}

func documentValue(key string, v any) (snapshot.Value, error) {
	switch typed := v.(type) {
	case string:
		return snapshot.StringValue(typed), nil
	case int:
		return snapshot.IntValue(typed), nil
	case int64:
		if typed < math.MinInt || typed > math.MaxInt {
			return snapshot.Value{}, fmt.Errorf("snapshot key %s: number %v out of range", key, typed)
		}
		return snapshot.IntValue(int(typed)), nil
	case float64:
		if typed != math.Trunc(typed) {
			return snapshot.Value{}, fmt.Errorf("snapshot key %s: non-integer number %v", key, typed)
		}
		if typed < float64(math.MinInt) || typed >= float64(math.MaxInt) {
			return snapshot.Value{}, fmt.Errorf("snapshot key %s: number %v out of range", key, typed)
		}
		return snapshot.IntValue(int(typed)), nil
	case bool:
		if typed {
			return snapshot.IntValue(1), nil
		}
		return snapshot.IntValue(0), nil
	case []any, map[string]any:
		if key != snapshot.KeyItemsJSON {
			return snapshot.Value{}, fmt.Errorf("snapshot key %s: nested values are only allowed for %s", key, snapshot.KeyItemsJSON)
		}
		encoded, err := json.Marshal(typed)
		if err != nil {
			return snapshot.Value{}, fmt.Errorf("snapshot key %s: %w", key, err)
		}
		return snapshot.StringValue(string(encoded)), nil
	default:
		return snapshot.Value{}, fmt.Errorf("snapshot key %s: unsupported value %T", key, v)
	}
}
