package cases

import "time"

type importRequest struct {
	CaseNumber string `json:"caseNumber"`
}

type importResponse struct {
	CaseID            string `json:"caseId"`
	DocumentsImported int    `json:"documentsImported"`
	DocumentsFailed   int    `json:"documentsFailed"`
}

type caseResponse struct {
	CaseID     string             `json:"caseId"`
	CaseNumber string             `json:"caseNumber"`
	Parties    string             `json:"parties"`
	Subject    string             `json:"subject"`
	CaseClass  string             `json:"class"`
	Area       string             `json:"area"`
	FiledDate  string             `json:"filedDate"`
	CreatedAt  time.Time          `json:"createdAt"`
	Documents  []documentResponse `json:"documents,omitempty"`
}

type documentResponse struct {
	DocumentID  string    `json:"documentId"`
	Name        string    `json:"name"`
	URL         string    `json:"url,omitempty"`
	ContentText string    `json:"contentText,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toImportResponse(res ImportResult) importResponse {
	return importResponse{
		CaseID:            res.CaseID,
		DocumentsImported: res.DocumentsImported,
		DocumentsFailed:   res.DocumentsFailed,
	}
}

func toCaseResponse(c Case, withDocuments bool) caseResponse {
	resp := caseResponse{
		CaseID:     c.ID,
		CaseNumber: c.CaseNumber,
		Parties:    c.Parties,
		Subject:    c.Subject,
		CaseClass:  c.CaseClass,
		Area:       c.Area,
		FiledDate:  c.FiledDate,
		CreatedAt:  c.CreatedAt,
	}
	if withDocuments {
		resp.Documents = make([]documentResponse, 0, len(c.Documents))
		for _, doc := range c.Documents {
			resp.Documents = append(resp.Documents, toDocumentResponse(doc))
		}
	}
	return resp
}

func toDocumentResponse(doc Document) documentResponse {
	return documentResponse{
		DocumentID:  doc.ID,
		Name:        doc.Name,
		URL:         doc.URL,
		ContentText: doc.ContentText,
		Summary:     doc.Summary,
		CreatedAt:   doc.CreatedAt,
	}
}
