// Package raw contains collections written strictly against the storage
// contracts: they keep handles, resolve them per access, and never retain a
// resolved pointer across a mutating call or a potential relocation of their
// own value.
//
// The storage is embedded by value. A Box or Vec over an inline storage is
// therefore a self-contained, allocation-free value: copy it and the copy's
// handles resolve into the copy's own bytes.
//
// These collections own their elements; Close destroys what is still live.
// They are deliberately minimal - the point is to exercise the contracts,
// not to compete with the standard containers.
package raw
