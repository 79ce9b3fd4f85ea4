package config

import (
	"os"
	"sync"
)

type ModelConfig struct {
	Dir string
}

var (
	modelConfig *ModelConfig
	modelOnce   sync.Once
)

// LoadModelConfig points at the directory holding the offline training
// artifact (model_info.json).
func LoadModelConfig() *ModelConfig {
	modelOnce.Do(func() {
		dir := os.Getenv("MODEL_DIR")
		if dir == "" {
			dir = "./model"
		}
		modelConfig = &ModelConfig{Dir: dir}
	})
	return modelConfig
}
