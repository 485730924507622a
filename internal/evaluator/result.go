package evaluator

// GenericErrorMessage is the only error text callers ever see.
const GenericErrorMessage = "Syntax Error or Unsupported Mock Command"

// QueryResult is the tabular output of an evaluation. Cells are strings,
// numbers, or nil. Columns and Rows are never nil so they encode as [].
type QueryResult struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
	Error   string   `json:"error,omitempty"`
}

// Failed reports whether the result carries an error.
func (r QueryResult) Failed() bool {
	return r.Error != ""
}

func emptyResult() QueryResult {
	return QueryResult{Columns: []string{}, Rows: [][]any{}}
}

func failureResult() QueryResult {
	result := emptyResult()
	result.Error = GenericErrorMessage
	return result
}
