package catalog

import (
	_ "embed"
	"io"
	"os"

	"github.com/bornholm/readings/internal/core/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed items.yml
var defaultItems []byte

type file struct {
	Items []fileItem `yaml:"items"`
}

type fileItem struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	catalog, err := Parse(defaultItems)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse embedded catalog")
	}

	return catalog, nil
}

func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse catalog file '%s'", path)
	}

	return catalog, nil
}

func Parse(data []byte) (*Catalog, error) {
	var f file

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]Entry, 0, len(f.Items))
	for _, item := range f.Items {
		entries = append(entries, Entry{
			Name: model.ItemName(item.Name),
			Range: model.IdentifierRange{
				Start: model.ReadingID(item.Start),
				End:   model.ReadingID(item.End),
			},
		})
	}

	return New(entries...)
}
