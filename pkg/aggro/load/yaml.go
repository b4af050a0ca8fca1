package load

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-aggro/pkg/aggro"
)

// FromYAML builds a pipeline from a YAML list of stage documents.
func FromYAML(data []byte) (*aggro.Pipeline, error) {
	var docs []map[string]any

	err := yaml.Unmarshal(data, &docs)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse yaml pipeline")
	}

	return FromDocuments(docs)
}
