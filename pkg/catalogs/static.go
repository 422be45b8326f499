package catalogs

import (
	"io/fs"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/mepankajsingh/modelmap/pkg/catalogs/embedded"
	"github.com/mepankajsingh/modelmap/pkg/errors"
)

var (
	staticOnce     sync.Once
	staticCatalogs map[string][]Model
	staticLoadErr  error
)

// loadStaticCatalogs parses every embedded catalog file exactly once.
func loadStaticCatalogs() {
	staticCatalogs = make(map[string][]Model)

	entries, err := fs.ReadDir(embedded.FS, "models")
	if err != nil {
		staticLoadErr = errors.WrapParse("yaml", "embedded catalogs", err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		data, err := fs.ReadFile(embedded.FS, "models/"+name)
		if err != nil {
			staticLoadErr = errors.WrapParse("yaml", name, err)
			return
		}

		var models []Model
		if err := yaml.Unmarshal(data, &models); err != nil {
			staticLoadErr = errors.WrapParse("yaml", name, err)
			return
		}

		// Strip the .yaml suffix to get the catalog name.
		staticCatalogs[name[:len(name)-len(".yaml")]] = models
	}
}

// StaticModels returns the fixed model list for a provider. The sequence is
// identical on every call; callers receive a fresh copy stamped with the
// requesting provider's ID so variants sharing a catalog still satisfy the
// provider-field invariant.
func (p *Provider) StaticModels() []Model {
	staticOnce.Do(loadStaticCatalogs)
	if staticLoadErr != nil {
		return nil
	}

	source := staticCatalogs[p.CatalogName()]
	models := make([]Model, len(source))
	copy(models, source)
	for i := range models {
		models[i].Provider = string(p.ID)
	}
	return models
}

// StaticLoadError reports whether the embedded catalogs failed to parse.
// Exposed for startup sanity checks.
func StaticLoadError() error {
	staticOnce.Do(loadStaticCatalogs)
	return staticLoadErr
}
