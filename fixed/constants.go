package fixed

// Operation names used to prefix errors with their context.
const (
	// MethodTryConstruct is the canonical name for TryConstruct.
	MethodTryConstruct = "TryConstruct"
	// MethodTryConstructIndexed is the canonical name for TryConstructIndexed.
	MethodTryConstructIndexed = "TryConstructIndexed"
	// MethodFromSeq is the canonical name for FromSeq.
	MethodFromSeq = "FromSeq"
	// MethodFromSlice is the canonical name for FromSlice.
	MethodFromSlice = "FromSlice"
)
