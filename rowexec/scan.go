package rowexec

import (
	"strings"

	"github.com/coredb-io/colex/sql"
)

// ScanExec reads batches from a DataSource under a column projection that
// is pushed all the way down to the source.
type ScanExec struct {
	Source     sql.DataSource
	Projection []string
}

// NewScanExec builds a ScanExec physical plan node.
func NewScanExec(source sql.DataSource, projection []string) ScanExec {
	return ScanExec{Source: source, Projection: projection}
}

func (s ScanExec) Schema() sql.Schema {
	if len(s.Projection) == 0 {
		return s.Source.Schema()
	}
	schema, err := s.Source.Schema().Select(s.Projection)
	if err != nil {
		panic(err)
	}
	return schema
}

func (s ScanExec) Execute(ctx *sql.Context) (sql.BatchIter, error) {
	return s.Source.Scan(ctx, s.Projection)
}

func (s ScanExec) Children() []sql.PhysicalPlan { return nil }

func (s ScanExec) String() string {
	return "ScanExec: projection=" + strings.Join(s.Projection, ",")
}
