package expression

// AggregateFunction is the closed set of aggregate functions the hash
// aggregate operator supports.
type AggregateFunction int

const (
	Sum AggregateFunction = iota
	Min
	Max
	Avg
	Count
	CountDistinct
)

func (f AggregateFunction) name() string {
	switch f {
	case Sum:
		return "sum"
	case Min:
		return "min"
	case Max:
		return "max"
	case Avg:
		return "avg"
	case Count:
		return "count"
	case CountDistinct:
		return "count_distinct"
	default:
		return "unknown"
	}
}

func (f AggregateFunction) String() string {
	switch f {
	case Sum:
		return "SUM"
	case Min:
		return "MIN"
	case Max:
		return "MAX"
	case Avg:
		return "AVG"
	case Count:
		return "COUNT"
	case CountDistinct:
		return "COUNT DISTINCT"
	default:
		return "UNKNOWN"
	}
}
