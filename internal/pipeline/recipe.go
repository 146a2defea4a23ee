package pipeline

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/anas-shakeel/bmpfx/internal/errors"
)

// Recipe is a reusable list of steps loaded from a TOML file:
//
//	output = "out.bmp"  # optional
//
//	[[step]]
//	op = "blur"
//	kernel = 5
//	sigma = 1.2
//
//	[[step]]
//	op = "stretch"
//	edge = "left"
//	fraction = 0.3
type Recipe struct {
	Output string `toml:"output"`
	Steps  []Step `toml:"step"`
}

// DecodeRecipe parses a recipe and validates every step. Unknown keys are
// rejected so that typos do not silently drop parameters.
func DecodeRecipe(r io.Reader) (*Recipe, error) {
	var recipe Recipe
	md, err := toml.NewDecoder(r).Decode(&recipe)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidParameter, err, "invalid recipe")
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.InvalidParameter("invalid recipe: unknown keys %s", strings.Join(keys, ", "))
	}

	for i, step := range recipe.Steps {
		if err := step.Validate(); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidParameter, err, "recipe step %d", i+1)
		}
	}
	return &recipe, nil
}

// LoadRecipe reads a recipe file.
func LoadRecipe(path string) (*Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.IO(err, "cannot open recipe %s", path)
	}
	defer f.Close()

	return DecodeRecipe(f)
}
