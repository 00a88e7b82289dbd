package dto

// UpdateProfileRequest replaces the singleton profile. Empty fields are
// stored as-is; the profile is always present, possibly all-empty.
type UpdateProfileRequest struct {
	Name        string `json:"name" example:"Ayesh Chamikara"`
	IndexNumber string `json:"indexNumber" example:"EN12345"`
	University  string `json:"university" example:"University of Moratuwa"`
	Photo       string `json:"photo" example:"data:image/png;base64,iVBORw0KGgo="`
}

// ProfileResponse mirrors the stored profile record.
type ProfileResponse struct {
	Name        string `json:"name"`
	IndexNumber string `json:"indexNumber"`
	University  string `json:"university"`
	Photo       string `json:"photo"`
}

// PhotoResponse returns the inline-encoded photo after an upload.
type PhotoResponse struct {
	Photo string `json:"photo"`
}
