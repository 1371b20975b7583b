package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

const sample = `
name = "shop"
root_path = "/src/shop"
languages = ["go", "typescript"]

[repository]
url = "https://example.com/shop.git"
branch = "main"
commit = "abc123"

[properties]
team = "platform"
`

func TestParse(t *testing.T) {
	m, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if m.Name != "shop" || m.RootPath != "/src/shop" {
		t.Errorf("m = %+v", m)
	}
	if len(m.Languages) != 2 {
		t.Errorf("languages = %v", m.Languages)
	}
	if m.Repository.URL != "https://example.com/shop.git" || m.Repository.Branch != "main" {
		t.Errorf("repository = %+v", m.Repository)
	}
	if m.Properties["team"] != "platform" {
		t.Errorf("properties = %v", m.Properties)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse("name = ["); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Name != "shop" {
		t.Errorf("name = %q", m.Name)
	}
}

func TestGraphMetadata(t *testing.T) {
	m, _ := Parse(sample)
	meta := m.GraphMetadata()

	if meta.Name != "shop" || meta.RepositoryURL != "https://example.com/shop.git" {
		t.Errorf("meta = %+v", meta)
	}
	if meta.Branch != "main" || meta.Commit != "abc123" {
		t.Error("repository coordinates lost")
	}
	if len(meta.Languages) != 2 {
		t.Errorf("languages = %v", meta.Languages)
	}
}
