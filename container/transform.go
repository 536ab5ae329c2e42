package container

// TransformSlice applies convert to each element of in and returns the
// results in a freshly allocated slice, the same shape as sqldef's
// util.TransformSlice. check.Error.Error uses it to turn a failed clause's
// raw int32 literals into the formatted fields its message renders.
func TransformSlice[T any, R any](in []T, convert func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = convert(v)
	}
	return out
}
