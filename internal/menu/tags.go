package menu

import (
	"slices"

	"carta/internal/model"
)

// ToggleTag returns a copy of item with tag removed if present, else appended.
func ToggleTag(item model.MenuItem, tag model.Tag) model.MenuItem {
	out := item.Clone()
	if i := slices.Index(out.Tags, tag); i >= 0 {
		out.Tags = slices.Delete(out.Tags, i, i+1)
		return out
	}
	out.Tags = append(out.Tags, tag)
	return out
}
