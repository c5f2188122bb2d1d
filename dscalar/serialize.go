package dscalar

// AliasDescriptor is the hook the out-of-scope read-write/serialization
// framework consumes (spec.md §6 "Serialization hook"): every scalar kind
// can be read and written as a plain IEEE-754 binary32, regardless of how
// its arithmetic is realized.
type AliasDescriptor[T Kind] struct {
	ValueToAlias func(T) float32
	AliasToValue func(float32) T
}

// Alias returns the serialization hook for kind T.
func Alias[T Kind]() AliasDescriptor[T] {
	return AliasDescriptor[T]{
		ValueToAlias: Float32[T],
		AliasToValue: New[T],
	}
}
