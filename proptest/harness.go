package proptest

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	"ondas/internal/catalog"
)

type Harness struct {
	T *rapid.T
}

// StoreHarness pairs a loaded store with the raw database it was built
// from, so properties can check results against the source mapping.
type StoreHarness struct {
	Harness
	Store    *catalog.Store
	Database map[catalog.CategoryID][]string
}

// RunWithStore drives a rapid property over freshly generated catalog
// databases: for every iteration a database is drawn, written to disk and
// loaded into a store before fn runs.
func RunWithStore(t *testing.T, fn func(h *StoreHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		database := databaseGen().Draw(rt, "database")
		path := filepath.Join(iterDir, "ondas_database.yaml")
		writeDatabase(rt, path, database)

		store := catalog.NewStore(path)
		if err := store.Load(); err != nil {
			rt.Fatalf("failed to load database: %v", err)
		}

		fn(&StoreHarness{
			Harness:  Harness{T: rt},
			Store:    store,
			Database: database,
		})
	})
}

func writeDatabase(t *rapid.T, path string, database map[catalog.CategoryID][]string) {
	file := make(map[string][]string, len(database))
	for id, filenames := range database {
		file[string(id)] = filenames
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		t.Fatalf("failed to marshal database: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write database: %v", err)
	}
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	rapid.Check(t, func(rt *rapid.T) {
		fn(&Harness{T: rt})
	})
}
