package pathset

import "rngrename/internal/prompt"

// fixThenRetry runs fix on the first error prompt and answers retry.
type fixThenRetry struct {
	fix   func()
	calls int
}

func (f *fixThenRetry) OnError(string, error) (prompt.ErrorResponse, error) {
	f.calls++
	f.fix()
	return prompt.Retry, nil
}

func (f *fixThenRetry) ConfirmBatch(string) (prompt.BatchResponse, error) {
	return prompt.Proceed, nil
}
