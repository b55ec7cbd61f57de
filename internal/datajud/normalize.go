package datajud

import "strings"

// Placeholder values substituted for fields the upstream record does not
// carry. Defaulting each field independently keeps imports working across
// tribunal integrations whose schemas drift.
const (
	PlaceholderParties    = "Partes não informadas"
	PlaceholderClaimant   = "Parte Ativa não informada"
	PlaceholderRespondent = "Parte Passiva não informada"
	PlaceholderSubject    = "Assunto não informado"
	PlaceholderClass      = "Classe não informada"
	PlaceholderArea       = "Área não informada"
	PlaceholderFiledDate  = "Data não informada"
)

const (
	poloClaimant   = "AT"
	poloRespondent = "PA"
)

// Normalized is the canonical field set extracted from a raw process.
type Normalized struct {
	Parties   string
	Subject   string
	CaseClass string
	Area      string
	FiledDate string
}

// Normalize maps a raw upstream record into the canonical field set. It is
// total: any input, including the zero value, yields a fully populated
// result with placeholders for whatever is missing.
func Normalize(raw RawProcess) Normalized {
	return Normalized{
		Parties:   normalizeParties(raw),
		Subject:   normalizeSubject(raw.Assuntos),
		CaseClass: normalizeClass(raw.Classe),
		Area:      defaultIfEmpty(raw.Area, PlaceholderArea),
		FiledDate: defaultIfEmpty(raw.DataAjuizamento, PlaceholderFiledDate),
	}
}

// normalizeParties selects a party mapper by the shape the record actually
// carries: the polo list when populated, the distribution-movement
// complement otherwise. New upstream shapes get their own case here.
func normalizeParties(raw RawProcess) string {
	if len(raw.Polos) > 0 {
		return partiesFromPolos(raw.Polos)
	}
	if v := partiesFromMovimentos(raw.Movimentos); v != "" {
		return v
	}
	return PlaceholderParties
}

func partiesFromPolos(polos []Polo) string {
	claimant := ""
	respondent := ""
	for _, p := range polos {
		name := firstPartyName(p.Partes)
		if name == "" {
			continue
		}
		switch strings.ToUpper(strings.TrimSpace(p.Polo)) {
		case poloClaimant:
			if claimant == "" {
				claimant = name
			}
		case poloRespondent:
			if respondent == "" {
				respondent = name
			}
		}
	}
	if claimant == "" {
		claimant = PlaceholderClaimant
	}
	if respondent == "" {
		respondent = PlaceholderRespondent
	}
	return claimant + " vs. " + respondent
}

// partiesFromMovimentos reads the "Partes" complement of the distribution
// movement, the only place older API revisions exposed party names.
func partiesFromMovimentos(movimentos []Movimento) string {
	for _, m := range movimentos {
		if !strings.EqualFold(strings.TrimSpace(m.Nome), "DISTRIBUIÇÃO") {
			continue
		}
		for _, comp := range m.Complementos {
			if strings.EqualFold(strings.TrimSpace(comp.Nome), "Partes") && strings.TrimSpace(comp.Valor) != "" {
				return strings.TrimSpace(comp.Valor)
			}
		}
	}
	return ""
}

func firstPartyName(partes []Parte) string {
	for _, p := range partes {
		if name := strings.TrimSpace(p.Nome); name != "" {
			return name
		}
	}
	return ""
}

// normalizeSubject prefers the entry flagged principal; with no flag set,
// the first named entry wins.
func normalizeSubject(assuntos []Assunto) string {
	first := ""
	for _, a := range assuntos {
		name := strings.TrimSpace(a.Nome)
		if name == "" {
			continue
		}
		if a.Principal {
			return name
		}
		if first == "" {
			first = name
		}
	}
	if first != "" {
		return first
	}
	return PlaceholderSubject
}

func normalizeClass(classe *NamedEntry) string {
	if classe == nil {
		return PlaceholderClass
	}
	return defaultIfEmpty(classe.Nome, PlaceholderClass)
}

func defaultIfEmpty(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
