package request

import "github.com/oapi-codegen/nullable"

// ApplyNullable writes n into dst when the key was present: null clears dst.
func ApplyNullable[T any](n nullable.Nullable[T], dst **T) {
	if !n.IsSpecified() {
		return
	}
	if n.IsNull() {
		*dst = nil
		return
	}
	v := n.MustGet()
	*dst = &v
}
