package plan

import (
	"strings"

	"github.com/coredb-io/colex/sql"
)

// Scan reads rows from a DataSource, applying an optional column
// projection at the source boundary.
type Scan struct {
	Path       string
	Source     sql.DataSource
	Projection []string
}

// NewScan builds a Scan logical plan node.
func NewScan(path string, source sql.DataSource, projection []string) Scan {
	return Scan{Path: path, Source: source, Projection: projection}
}

func (s Scan) Schema() sql.Schema {
	if len(s.Projection) == 0 {
		return s.Source.Schema()
	}
	schema, err := s.Source.Schema().Select(s.Projection)
	if err != nil {
		panic(err)
	}
	return schema
}

func (s Scan) Children() []sql.LogicalPlan { return nil }

func (s Scan) String() string {
	if len(s.Projection) == 0 {
		return "Scan: " + s.Path + "; projection=None"
	}
	return "Scan: " + s.Path + "; projection=[" + strings.Join(s.Projection, ",") + "]"
}
