// internal/domain/models/material.go
package models

// GroupAll is the sentinel group meaning "every group". Lecture-style
// subjects that have no group roster store their materials under it.
const GroupAll = "all"

// Material represents one unit of course content (a lecture, practical
// work, or handout) distributed to students through the bot.
//
// A Material always carries a stored file: the submission wizard commits
// it only after the attachment has been saved, so FilePath is never empty
// in the catalog. Materials are immutable after creation; the only
// lifecycle operation besides creation is deletion.
type Material struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Subject string `json:"subject"`

	// Group is a student cohort label for subjects with a roster,
	// or GroupAll for subjects organized by material type.
	Group string `json:"group"`

	// MaterialType is the category label ("📚 Лекции", "📝 Практические
	// работы") for subjects organized by type.
	MaterialType string `json:"material_type"`

	Description string `json:"description"`

	// FilePath is the asset name inside the media directory, not an
	// absolute path.
	FilePath string `json:"file_path"`

	// DateAdded is the ISO calendar date (YYYY-MM-DD) of creation.
	// Date granularity only; recency ordering compares these strings.
	DateAdded string `json:"date_added"`
}

// ForAllGroups reports whether the material is visible to every group.
func (m *Material) ForAllGroups() bool {
	return m.Group == "" || m.Group == GroupAll
}

// HasFile returns true if this material has a stored file.
func (m *Material) HasFile() bool {
	return m.FilePath != ""
}
