package models

// BackupBundle is the admin export/import format: every persisted snapshot in
// one document. Import is all-or-nothing; a bundle that fails to decode leaves
// state untouched.
type BackupBundle struct {
	ExportedAt string       `json:"exported_at"`
	Products   []Product    `json:"products"`
	Settings   SiteSettings `json:"settings"`
	Policies   []PolicyPage `json:"policies"`
	Orders     []Order      `json:"orders"`
}
