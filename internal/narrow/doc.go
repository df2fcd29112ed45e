// Package narrow flags numeric conversions that silently lose precision
// or range: 64-bit to 32-bit truncation within a category, 64-bit integer
// to 32-bit float, and 64-bit float to 32-bit integer.
//
// The check is purely syntactic and type-level. One recursive pass walks
// each function body; at every site where a value flows into a typed
// context (variable initialization, assignment, function argument,
// return) the source expression is unwrapped through conversion nodes to
// its original type and the (to, from) pair is classified against the
// narrowing policy. No value-range analysis is attempted: assigning a
// 64-bit variable holding 10 to a 32-bit slot is still flagged.
//
// The pass never fails: missing or invalid types, unresolvable callees
// and unknown node kinds all degrade to skipping that site while the
// traversal continues. It runs after typing and before any lowering that
// would erase the conversion wrappers it depends on.
package narrow
