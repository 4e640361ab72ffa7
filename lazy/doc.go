// Package lazy
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity slot storage where initialization is tracked by the caller.
// Array[T] owns the slots and validates every range against capacity, but is
// indifferent to which slots hold live values: that state is supplied by the
// caller on every AssumeInit* call. Higher layers (see the ring and array
// packages) encode their own bookkeeping on top.
package lazy
