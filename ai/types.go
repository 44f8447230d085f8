package ai

import (
	"errors"
	"strings"
)

// Schema defines the entity types, the relation, and the output columns
// the extraction service is asked for. It is fixed once per run; every
// segment of a run is extracted against the same schema.
type Schema struct {
	// Entities are the entity types to extract, e.g. "Organisation".
	Entities []string

	// Relation names the relation linking the extracted entities.
	Relation string

	// Columns are the output columns, in order. The model is asked to
	// emit one CSV row per relation with exactly these columns.
	Columns []string
}

// DefaultSchema returns the deployment's fixed extraction schema:
// Organisation, Name and PAN entities joined by the PAN_Of relation,
// emitted as PAN, Relation, Person, Organisation rows. The Organisation
// column may be blank.
func DefaultSchema() Schema {
	return Schema{
		Entities: []string{"Organisation", "Name", "PAN"},
		Relation: "PAN_Of",
		Columns:  []string{"PAN", "Relation", "Person", "Organisation"},
	}
}

// Validate checks that the schema is complete.
func (s Schema) Validate() error {
	if len(s.Entities) == 0 {
		return errors.New("schema: at least one entity type is required")
	}
	if strings.TrimSpace(s.Relation) == "" {
		return errors.New("schema: relation name is required")
	}
	if len(s.Columns) == 0 {
		return errors.New("schema: at least one output column is required")
	}
	return nil
}
