// File: internal/model/patch.go
package model

// Patch fields are pointers: nil means "not sent", so the stored value stays.

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// setList replaces the whole list; elements are never merged.
func setList(dst *[]string, v *[]string) {
	if v == nil {
		return
	}
	if *v == nil {
		*dst = []string{}
		return
	}
	*dst = append([]string(nil), (*v)...)
}
