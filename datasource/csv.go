package datasource

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/coredb-io/colex/columnar"
	"github.com/coredb-io/colex/sql"
)

var log = logrus.StandardLogger()

// CSVSource reads a delimited text file against a caller-supplied schema,
// chunking rows into RecordBatches of at most BatchSize rows. It is a
// deliberately minimal file reader: no type inference, no header
// detection beyond skipping the first line, no compression.
type CSVSource struct {
	path      string
	schema    sql.Schema
	batchSize int
}

// NewCSVSource builds a CSVSource over path using schema to type each
// column, reading at most batchSize rows per emitted batch.
func NewCSVSource(path string, schema sql.Schema, batchSize int) *CSVSource {
	return &CSVSource{path: path, schema: schema, batchSize: batchSize}
}

func (c *CSVSource) Schema() sql.Schema { return c.schema }

func (c *CSVSource) Scan(ctx *sql.Context, projection []string) (sql.BatchIter, error) {
	indices, err := resolveProjection(c.schema, projection)
	if err != nil {
		return nil, err
	}
	outSchema := c.schema
	if len(projection) > 0 {
		outSchema, err = c.schema.Select(projection)
		if err != nil {
			return nil, err
		}
	}

	log.WithField("path", c.path).WithField("batchSize", c.batchSize).Debug("opening CSV source")

	f, err := os.Open(c.path)
	if err != nil {
		return nil, errors.Wrapf(sql.ErrSourceRead.New(err.Error()), "opening %s", c.path)
	}
	reader := csv.NewReader(f)
	// The first record is a header row and is discarded; column identity
	// comes from the caller-supplied schema, not the file.
	if _, err := reader.Read(); err != nil && err != io.EOF {
		_ = f.Close()
		return nil, errors.Wrapf(sql.ErrSourceRead.New(err.Error()), "reading header of %s", c.path)
	}

	return &csvIter{
		file:      f,
		reader:    reader,
		schema:    c.schema,
		outSchema: outSchema,
		indices:   indices,
		batchSize: c.batchSize,
	}, nil
}

type csvIter struct {
	file      *os.File
	reader    *csv.Reader
	schema    sql.Schema
	outSchema sql.Schema
	indices   []int
	batchSize int
	exhausted bool
}

func (it *csvIter) Next(ctx *sql.Context) (sql.RecordBatch, error) {
	if it.exhausted {
		return sql.RecordBatch{}, io.EOF
	}

	columns := make([][]interface{}, len(it.indices))
	rows := 0
	for rows < it.batchSize {
		record, err := it.reader.Read()
		if err == io.EOF {
			it.exhausted = true
			break
		}
		if err != nil {
			return sql.RecordBatch{}, errors.Wrap(sql.ErrSourceRead.New(err.Error()), "reading record")
		}
		for i, idx := range it.indices {
			v, err := parseCell(record[idx], it.schema.Fields[idx].DataType)
			if err != nil {
				log.WithField("column", it.schema.Fields[idx].Name).WithField("value", record[idx]).
					Warn("CSV cell does not parse as its declared type")
				return sql.RecordBatch{}, err
			}
			columns[i] = append(columns[i], v)
		}
		rows++
	}
	if rows == 0 {
		return sql.RecordBatch{}, io.EOF
	}

	arrays := make([]sql.ColumnArray, len(it.indices))
	for i, idx := range it.indices {
		arr, err := columnar.NewArray(it.schema.Fields[idx].DataType, columns[i])
		if err != nil {
			return sql.RecordBatch{}, err
		}
		arrays[i] = arr
	}
	return sql.NewRecordBatch(it.outSchema, arrays)
}

func (it *csvIter) Close(ctx *sql.Context) error {
	return it.file.Close()
}

func parseCell(s string, typ sql.DataType) (interface{}, error) {
	switch typ {
	case sql.Int32:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, sql.ErrInvalidCast.New(sql.Utf8, typ)
		}
		return int32(n), nil
	case sql.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, sql.ErrInvalidCast.New(sql.Utf8, typ)
		}
		return n, nil
	case sql.Float32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, sql.ErrInvalidCast.New(sql.Utf8, typ)
		}
		return float32(f), nil
	case sql.Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, sql.ErrInvalidCast.New(sql.Utf8, typ)
		}
		return f, nil
	case sql.Boolean:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, sql.ErrInvalidCast.New(sql.Utf8, typ)
		}
		return b, nil
	default:
		return s, nil
	}
}
