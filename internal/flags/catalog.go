package flags

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

//go:embed commands.yaml
var defaultCommands []byte

var (
	ErrEmptyTier     = errors.New("command tier is empty")
	ErrInvalidAction = errors.New("invalid command action")
)

// Catalog holds the spoken commands grouped by the difficulty that unlocks them.
type Catalog struct {
	Basic     []entity.FlagCommand `yaml:"basic"`
	Variation []entity.FlagCommand `yaml:"variation"`
	Complex   []entity.FlagCommand `yaml:"complex"`
	Trick     []entity.FlagCommand `yaml:"trick"`
}

// LoadCatalog parses the built-in command list.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCommands)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	catalog := &Catalog{}
	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, fmt.Errorf("failed to decode command catalog: %w", err)
	}

	tiers := map[string][]entity.FlagCommand{
		"basic":     catalog.Basic,
		"variation": catalog.Variation,
		"complex":   catalog.Complex,
		"trick":     catalog.Trick,
	}

	for name, commands := range tiers {
		if len(commands) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyTier, name)
		}

		for _, command := range commands {
			if !command.Action.IsValid() {
				return nil, fmt.Errorf("tier %s: %w: %q", name, ErrInvalidAction, command.Action)
			}
		}
	}

	return catalog, nil
}

// Available returns every command that may be issued at difficulty.
// Variation unlocks at 2, complex at 3 and trick at 4.
func (that *Catalog) Available(difficulty int) []entity.FlagCommand {
	tiers := [][]entity.FlagCommand{that.Basic}

	if difficulty >= 2 {
		tiers = append(tiers, that.Variation)
	}

	if difficulty >= 3 {
		tiers = append(tiers, that.Complex)
	}

	if difficulty >= 4 {
		tiers = append(tiers, that.Trick)
	}

	return lo.Flatten(tiers)
}
