package users

import "time"

// User is an authenticated account plus its professional profile. A profile
// is complete once judging body and role are filled; the UI gates case
// import on that.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"fullName"`
	PictureURL  string    `json:"pictureUrl"`
	JudgingBody string    `json:"judgingBody"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProfileComplete reports whether the professional profile has been filled.
func (u User) ProfileComplete() bool {
	return u.JudgingBody != "" && u.Role != ""
}
