package cases

import "time"

// Case is one legal proceeding imported from the case-records API. It is
// owned by exactly one user; ownership is never transferred.
type Case struct {
	ID         string
	UserID     string
	CaseNumber string
	Parties    string
	Subject    string
	CaseClass  string
	Area       string
	FiledDate  string
	CreatedAt  time.Time
	Documents  []Document
}

// Document is a file attached to a case. ContentText is the immutable source
// body; Summary starts empty and is overwritten on each generation.
type Document struct {
	ID          string
	CaseID      string
	Name        string
	URL         string
	ContentText string
	Summary     string
	CreatedAt   time.Time
}
