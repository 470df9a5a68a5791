package styles

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/diwise/api-landcover/internal/pkg/domain"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

type formatRegistry struct {
	Formats []string `yaml:"formats"`
}

// SeedFormats reads a yaml registry of style format names and creates any
// format that is not already present in the catalog. Formats that exist
// are left untouched.
func SeedFormats(ctx context.Context, svc StyleService, input io.Reader) error {
	buf, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("failed to read style format registry: %w", err)
	}

	registry := formatRegistry{}
	if err := yaml.Unmarshal(buf, &registry); err != nil {
		return fmt.Errorf("failed to parse style format registry: %w", err)
	}

	seeded := []string{}

	for _, name := range registry.Formats {
		if slices.Contains(seeded, name) {
			continue
		}
		seeded = append(seeded, name)

		_, err := svc.CreateFormat(ctx, name)
		if err != nil && !errors.Is(err, domain.ErrConflict) {
			return fmt.Errorf("failed to seed style format %s: %w", name, err)
		}
	}

	return nil
}
