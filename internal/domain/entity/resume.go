package entity

import "time"

// Resume is the metadata of an uploaded resume file. The binary lives in object storage.
type Resume struct {
	ID             string    `json:"_id"`
	UserID         string    `json:"userId"`
	FileName       string    `json:"fileName"` // <FirstName><LastName>-<TargetPosition>.<ext>
	TargetPosition string    `json:"targetPosition"`
	Skills         []string  `json:"skills"`
	ResumeLink     string    `json:"resumeLink"`
	StorageKey     string    `json:"-"`
	UploadedOn     time.Time `json:"uploadedOn"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// OwnerID returns the user that owns the resume.
func (r Resume) OwnerID() string { return r.UserID }
