package content

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/madhatterpub/site/internal/domain"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrInvalidContent is returned when a content file does not have the
// expected shape.
var ErrInvalidContent = errors.New("invalid content")

// validatorInstance is shared so struct metadata is cached once.
var validatorInstance = validator.New()

// Loader reads content override files from a filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader backed by fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load reads the override file at path and applies it over the defaults.
func (l *Loader) Load(path string) (Content, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return Content{}, fmt.Errorf("reading content file %s: %w", path, err)
	}
	o, err := Parse(data)
	if err != nil {
		return Content{}, fmt.Errorf("parsing content file %s: %w", path, err)
	}
	c := o.Apply(Default())
	if err := Validate(c); err != nil {
		return Content{}, fmt.Errorf("content file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML override document. Unknown keys are rejected so that
// typos do not silently fall back to the defaults.
func Parse(data []byte) (Override, error) {
	var o Override
	if len(bytes.TrimSpace(data)) == 0 {
		return o, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		return Override{}, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	return o, nil
}

// Validate checks the shape of c: required fields are present and ids are
// unique within each list.
func Validate(c Content) error {
	err := validatorInstance.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "unique" {
				return fmt.Errorf("%w: %w: %s", ErrInvalidContent, domain.ErrDuplicateID, fe.Namespace())
			}
		}
	}
	return fmt.Errorf("%w: %w", ErrInvalidContent, err)
}
