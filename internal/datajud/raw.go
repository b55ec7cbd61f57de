package datajud

// RawProcess is the `_source` document of a Datajud search hit. The shape is
// owned by the upstream system and varies across tribunal integrations and
// API revisions, so every field is optional and nothing here is persisted
// as-is; Normalize maps it into the application schema.
type RawProcess struct {
	NumeroProcesso  string        `json:"numeroProcesso"`
	Classe          *NamedEntry   `json:"classe,omitempty"`
	Area            string        `json:"area,omitempty"`
	DataAjuizamento string        `json:"dataAjuizamento,omitempty"`
	Assuntos        []Assunto     `json:"assuntos,omitempty"`
	Polos           []Polo        `json:"polos,omitempty"`
	Movimentos      []Movimento   `json:"movimentos,omitempty"`
	Documentos      []RawDocument `json:"documentos,omitempty"`
}

// NamedEntry is the common {codigo, nome} pair used across the schema.
type NamedEntry struct {
	Codigo int    `json:"codigo,omitempty"`
	Nome   string `json:"nome,omitempty"`
}

// Assunto is one subject entry; at most one is flagged principal.
type Assunto struct {
	Codigo    int    `json:"codigo,omitempty"`
	Nome      string `json:"nome,omitempty"`
	Principal bool   `json:"principal,omitempty"`
}

// Polo is one side of the proceeding: "AT" (polo ativo, claimant) or
// "PA" (polo passivo, respondent).
type Polo struct {
	Polo   string  `json:"polo,omitempty"`
	Partes []Parte `json:"partes,omitempty"`
}

// Parte is one named party within a polo.
type Parte struct {
	Nome string `json:"nome,omitempty"`
}

// Movimento is a procedural movement; older API revisions exposed the party
// names only as a complement of the distribution movement.
type Movimento struct {
	Nome         string        `json:"nome,omitempty"`
	Complementos []Complemento `json:"complementos,omitempty"`
}

// Complemento is a {nome, valor} annotation attached to a movement.
type Complemento struct {
	Nome  string `json:"nome,omitempty"`
	Valor string `json:"valor,omitempty"`
}

// RawDocument is a document entry attached to a process. The public API
// currently returns none, but the field is mapped for integrations that do.
type RawDocument struct {
	Nome  string `json:"nome,omitempty"`
	URL   string `json:"url,omitempty"`
	Texto string `json:"texto,omitempty"`
}
