package repository

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/dispatch_system/internal/models"
	"github.com/spf13/viper"
)

type responderSeed struct {
	Responders []models.Responder `mapstructure:"responders" validate:"required,min=1,dive"`
}

// LoadResponders читает начальный список экипажей из файла (yaml, json или toml)
func LoadResponders(path string) ([]models.Responder, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read responders file error: %w", err)
	}

	var seed responderSeed
	if err := v.Unmarshal(&seed); err != nil {
		return nil, fmt.Errorf("unmarshal responders error: %w", err)
	}
	if err := validator.New().Struct(seed); err != nil {
		return nil, fmt.Errorf("validate responders error: %w", err)
	}

	seen := make(map[string]struct{}, len(seed.Responders))
	now := time.Now()
	for i := range seed.Responders {
		id := seed.Responders[i].ID
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("duplicate responder id %s", id)
		}
		seen[id] = struct{}{}
		if seed.Responders[i].LastUpdate.IsZero() {
			seed.Responders[i].LastUpdate = now
		}
	}
	return seed.Responders, nil
}
