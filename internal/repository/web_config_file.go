package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"BotDash/internal/domain/models"
)

// webConfigValidate reports fields by their JSON key names.
var webConfigValidate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// FileWebConfigSource reads the Firebase web config from disk on every Load,
// so edits and breakage of the file are visible without a restart.
type FileWebConfigSource struct {
	path string
}

func NewFileWebConfigSource(path string) *FileWebConfigSource {
	return &FileWebConfigSource{path: path}
}

// Load decodes only the allow-listed keys; anything else in the file is ignored.
// A missing core key is an error, a missing measurementId is not.
func (s *FileWebConfigSource) Load() (models.FirebaseWebConfig, error) {
	var cfg models.FirebaseWebConfig

	b, err := os.ReadFile(s.path)
	if err != nil {
		return cfg, fmt.Errorf("read web config: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return models.FirebaseWebConfig{}, fmt.Errorf("parse web config: %w", err)
	}
	if err := webConfigValidate.Struct(cfg); err != nil {
		return models.FirebaseWebConfig{}, fmt.Errorf("web config: %w", missingFields(err))
	}
	return cfg, nil
}

// missingFields flattens validator errors into one message naming the keys.
func missingFields(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, fe.Field())
	}
	return fmt.Errorf("missing required field(s): %s", strings.Join(names, ", "))
}
