// Package similarity provides a small generic similarity contract and a set
// of concrete metrics for comparing numbers and sequences.
//
// The contract comes in four calling shapes, all semantically equivalent:
// a function over one combined input, a function over two separate inputs,
// a method on a receiver alone, and a method comparing a receiver against
// one external input. Every implementation is a pure function of its inputs.
//
// Metrics that are defined for every input return a bare value. Metrics that
// can be mathematically undefined (division by zero, integer overflow, empty
// collections) return (value, ok) and signal the undefined case with
// ok == false rather than an error or a panic. Each implementation documents
// which policy it uses, since callers branch on it.
package similarity

// Func computes the similarity of a single combined input, such as a pair
// packed into one value.
type Func[I, O any] func(in I) O

// PairFunc computes the similarity of two separately passed inputs.
type PairFunc[A, B, O any] func(a A, b B) O

// Self is implemented by types that measure similarity of the receiver
// against nothing, such as an internal consistency score.
type Self[O any] interface {
	Similarity() O
}

// To is implemented by types that measure similarity between the receiver
// and one external input.
type To[I, O any] interface {
	Similarity(in I) O
}
