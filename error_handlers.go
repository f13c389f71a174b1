package taskrun

// reportTaskError reports a failed settlement to the configured handler.
//
// Task errors do not stop the run; they are recorded for the next pass and
// delivered here once per pass, in index order. If no handler is
// registered, the error is only logged.
func (r *Runner) reportTaskError(index, attempt int, err error) {
	if r.opts.OnTaskError != nil {
		r.opts.OnTaskError(index, attempt, err)
	}
}
