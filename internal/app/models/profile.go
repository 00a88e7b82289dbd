package models

// UserProfile is the singleton profile record. It is always present, possibly
// with every field empty. Photo holds an inline base64 data URI; missing or
// malformed photo data is rendered as-is by the UI, no validation occurs here.
type UserProfile struct {
	Name        string `json:"name"`
	IndexNumber string `json:"indexNumber"`
	University  string `json:"university"`
	Photo       string `json:"photo"`
}

// IsEmpty reports whether the profile carries no data at all.
func (p UserProfile) IsEmpty() bool {
	return p.Name == "" && p.IndexNumber == "" && p.University == "" && p.Photo == ""
}
