package iterate

import "github.com/lyraproj/issue/issue"

const (
	MissingSequence  = `ITERATE_MISSING_SEQUENCE`
	MissingConsumer  = `ITERATE_MISSING_CONSUMER`
	IllegalSliceSize = `ITERATE_ILLEGAL_SLICE_SIZE`
)

func init() {
	issue.Hard(MissingSequence, `%{function}: no sequence to iterate was given`)
	issue.Hard(MissingConsumer, `%{function}: no consumer was given`)
	issue.Hard(IllegalSliceSize, `%{function}: slice size must be at least 1, got %{size}`)
}

// Error creates an error severity Reported for the given issue code.
// This package has no evaluation context so the location is always nil.
func Error(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SEVERITY_ERROR, args, nil)
}

func checkArgs(function string, noSequence, noConsumer bool) {
	if noSequence {
		panic(Error(MissingSequence, issue.H{`function`: function}))
	}
	if noConsumer {
		panic(Error(MissingConsumer, issue.H{`function`: function}))
	}
}
