package cli

import (
	"fmt"

	"github.com/amoilanen/cliff/internal/config"
	"github.com/amoilanen/cliff/internal/display"
	"github.com/amoilanen/cliff/internal/llm"
)

// activeModel resolves the model a command should talk to: the --model
// override when it names a configured model, otherwise the current or
// default selection from the config file.
func activeModel(cfg *config.Config, d *display.Display) (*config.Model, error) {
	if modelFlag != "" {
		if m, ok := cfg.Models[modelFlag]; ok {
			return &m, nil
		}
		d.Warningf("Warning: Model '%s' not found, using default/active model.", modelFlag)
	}
	m := cfg.ActiveModel()
	if m == nil {
		return nil, fmt.Errorf("%w: add one with 'cliff config add' and select it with 'cliff config set-default'", config.ErrNoModels)
	}
	return m, nil
}

// newPlanner loads the config, resolves the active model, and builds the
// LLM client commands plan and ask through.
func newPlanner(d *display.Display) (*llm.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	model, err := activeModel(cfg, d)
	if err != nil {
		return nil, err
	}
	return llm.New(model, nil)
}
