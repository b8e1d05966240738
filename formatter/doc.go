// Package formatter composes trace lines into bytes.
//
// Every line-oriented emitter starts by rendering the indentation
// prefix (program-name tag, then one IndentUnit per nesting level) and
// then appends one of the fixed payload shapes:
//
//	file:line:name = 65, 0x41, 'A'
//	file:line:name = 0x0040a1c0
//	file:line:name = 0x0040a1c0 "text"
//	file:line:message
//	file:line:Entering function
//	file:line: Leaving function (result 0x00000000, 0)
//	file:line:Expression 'x != nil' failed assertion in function().
//
// Numbers are rendered with strconv Append functions into a pooled
// bytes.Buffer so a complete line reaches the sink in a single write.
// Buffers larger than 64 KiB are not returned to the pool.
package formatter
