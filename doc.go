// Package gocursor provides a bidirectional cursor over an owned, ordered
// snapshot of values.
//
// # Overview
//
// A Cursor is built once from a slice, a variadic list or an iter.Seq. It
// takes a shallow copy of the input, so later changes to the caller's slice
// are not observed, and starts before the first element (index -1).
//
//	c := gocursor.Of(1, 2, 3)
//	for c.HasNext() {
//	    v, _ := c.Next()
//	    fmt.Println(v)
//	}
//
// # Key concepts
//
//   - Sentinel: reads that point at no element return the zero value of T and
//     false, never a panic.
//   - Unchecked movement: Next and Prev do not clamp the index. Guard them with
//     HasNext/HasPrev, or opt into WithClamping.
//   - Position tokens: Cursor.Token and Resume carry a position across API
//     calls as an opaque base64 string.
//   - Query/Load: load an ordered GORM result set straight into a cursor.
package gocursor
