package config

import (
	"strings"
	"testing"
)

func testModel(name string) Model {
	return Model{
		Name:             name,
		APIURL:           "https://api.example.com/v1/chat",
		APIKey:           "secret",
		ModelIdentifier:  name + "-large",
		RequestFormat:    `{"model": "{{model}}", "input": "{{prompt}}"}`,
		ResponseJSONPath: "$.answer",
	}
}

func TestPathUnderConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := Path()
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	if !strings.HasSuffix(path, "cliff/config.yaml") {
		t.Errorf("Path() = %q, want it to end in cliff/config.yaml", path)
	}
}

func TestLoadMissingConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.Models) != 0 {
		t.Errorf("expected no models, got %d", len(cfg.Models))
	}
	if cfg.ActiveModel() != nil {
		t.Error("expected no active model for empty config")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Models: map[string]Model{}}
	cfg.AddModel(testModel("alpha"))
	cfg.AddModel(Model{
		Name:            "beta",
		APIURL:          "https://beta.example.com",
		ModelIdentifier: "beta-mini",
		Provider:        ProviderOpenAI,
	})
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.DefaultModel != "alpha" {
		t.Errorf("default model = %q, want alpha (first added)", loaded.DefaultModel)
	}
	alpha, ok := loaded.Models["alpha"]
	if !ok {
		t.Fatal("model alpha missing after round trip")
	}
	if alpha.RequestFormat != testModel("alpha").RequestFormat {
		t.Errorf("request format = %q, want original template", alpha.RequestFormat)
	}
	if alpha.ResponseJSONPath != "$.answer" {
		t.Errorf("response JSON path = %q, want $.answer", alpha.ResponseJSONPath)
	}
	beta, ok := loaded.Models["beta"]
	if !ok {
		t.Fatal("model beta missing after round trip")
	}
	if beta.Provider != ProviderOpenAI {
		t.Errorf("provider = %q, want %q", beta.Provider, ProviderOpenAI)
	}
}

func TestActiveModelResolution(t *testing.T) {
	cfg := &Config{Models: map[string]Model{}}
	cfg.AddModel(testModel("alpha"))
	cfg.AddModel(testModel("beta"))

	if got := cfg.ActiveModel(); got == nil || got.Name != "alpha" {
		t.Fatalf("active model = %v, want default alpha", got)
	}

	if err := cfg.SetCurrent("beta"); err != nil {
		t.Fatalf("SetCurrent() error: %v", err)
	}
	if got := cfg.ActiveModel(); got == nil || got.Name != "beta" {
		t.Fatalf("active model = %v, want current beta", got)
	}

	cfg.ClearCurrent()
	if got := cfg.ActiveModel(); got == nil || got.Name != "alpha" {
		t.Fatalf("active model after clear = %v, want default alpha", got)
	}
}

func TestSetDefaultUnknownModel(t *testing.T) {
	cfg := &Config{Models: map[string]Model{}}
	if err := cfg.SetDefault("ghost"); err == nil {
		t.Fatal("expected error for unknown model")
	}
}

func TestDeleteClearsReferences(t *testing.T) {
	cfg := &Config{Models: map[string]Model{}}
	cfg.AddModel(testModel("alpha"))
	if err := cfg.SetCurrent("alpha"); err != nil {
		t.Fatalf("SetCurrent() error: %v", err)
	}

	if err := cfg.Delete("alpha"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if cfg.DefaultModel != "" || cfg.CurrentModel != "" {
		t.Errorf("references not cleared: default=%q current=%q", cfg.DefaultModel, cfg.CurrentModel)
	}
	if err := cfg.Delete("alpha"); err == nil {
		t.Fatal("expected error deleting a missing model")
	}
}

func TestModelNamesSorted(t *testing.T) {
	cfg := &Config{Models: map[string]Model{}}
	for _, name := range []string{"zeta", "alpha", "mid"} {
		cfg.AddModel(testModel(name))
	}
	got := cfg.ModelNames()
	want := []string{"alpha", "mid", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("ModelNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ModelNames() = %v, want %v", got, want)
		}
	}
}
