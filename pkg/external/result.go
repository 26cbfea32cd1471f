package external

// Source tells where a Result value came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Result wraps a provider value. Value is always usable: on any failure it holds
// the provider's fallback and Err holds the cause.
type Result[T any] struct {
	Value  T
	Source Source
	Err    error
}

// Fallback reports whether the value is the built-in substitute.
func (r Result[T]) Fallback() bool {
	return r.Source == SourceFallback
}

func live[T any](v T) Result[T] {
	return Result[T]{Value: v, Source: SourceLive}
}

func fallback[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Source: SourceFallback, Err: err}
}
