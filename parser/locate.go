package parser

// locate wraps inner with comment consumption, whitespace skipping, and
// start/end location stamping against the Span's shared LocationRecorder,
// per SPEC_FULL.md §4.3. It is the sole mechanism by which locations are
// recorded: every leaf and composite parser in this package that should
// appear in source_code_info calls locate rather than touching the
// recorder directly.
func locate[T any](inner func(Span) (Span, T, error), tag Tag) func(Span) (Span, T, error) {
	return func(in Span) (Span, T, error) {
		afterComments, comments, _ := many0(parseComment)(in)
		start, _, blankLine := multispace0(afterComments)

		handle := start.rec.Start(start, tag)

		if blankLine {
			handle.leadingDetached = comments
		} else if len(comments) > 0 {
			last := comments[len(comments)-1]
			handle.leadingComments = &last
			handle.leadingDetached = comments[:len(comments)-1]
		}

		end, value, err := inner(start)
		if err != nil {
			start.rec.Discard(handle)
			var zero T
			return in, zero, err
		}

		start.rec.End(handle, end)
		remainder, _, _ := multispace0(end)
		return remainder, value, nil
	}
}
