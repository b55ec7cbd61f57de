package datajud

import (
	"encoding/json"
	"testing"
)

func TestNormalizeEmptyRecordIsTotal(t *testing.T) {
	got := Normalize(RawProcess{})

	want := Normalized{
		Parties:   PlaceholderParties,
		Subject:   PlaceholderSubject,
		CaseClass: PlaceholderClass,
		Area:      PlaceholderArea,
		FiledDate: PlaceholderFiledDate,
	}
	if got != want {
		t.Fatalf("Normalize(zero) = %+v, want %+v", got, want)
	}
}

func TestNormalizePartiesBothPolos(t *testing.T) {
	raw := RawProcess{
		Polos: []Polo{
			{Polo: "AT", Partes: []Parte{{Nome: "Maria Silva"}}},
			{Polo: "PA", Partes: []Parte{{Nome: "Banco Nacional S.A."}}},
		},
	}
	got := Normalize(raw).Parties
	if got != "Maria Silva vs. Banco Nacional S.A." {
		t.Fatalf("Parties = %q", got)
	}
}

func TestNormalizePartiesClaimantOnly(t *testing.T) {
	raw := RawProcess{
		Polos: []Polo{
			{Polo: "AT", Partes: []Parte{{Nome: "Maria Silva"}}},
		},
	}
	got := Normalize(raw).Parties
	if got != "Maria Silva vs. "+PlaceholderRespondent {
		t.Fatalf("Parties = %q", got)
	}
}

func TestNormalizePartiesRespondentOnly(t *testing.T) {
	raw := RawProcess{
		Polos: []Polo{
			{Polo: "PA", Partes: []Parte{{Nome: "Banco Nacional S.A."}}},
		},
	}
	got := Normalize(raw).Parties
	if got != PlaceholderClaimant+" vs. Banco Nacional S.A." {
		t.Fatalf("Parties = %q", got)
	}
}

func TestNormalizePartiesMovementFallback(t *testing.T) {
	raw := RawProcess{
		Movimentos: []Movimento{
			{Nome: "CONCLUSÃO"},
			{
				Nome: "DISTRIBUIÇÃO",
				Complementos: []Complemento{
					{Nome: "Partes", Valor: "João Souza x Construtora Alfa Ltda"},
				},
			},
		},
	}
	got := Normalize(raw).Parties
	if got != "João Souza x Construtora Alfa Ltda" {
		t.Fatalf("Parties = %q", got)
	}
}

func TestNormalizePolosPreferredOverMovimentos(t *testing.T) {
	raw := RawProcess{
		Polos: []Polo{
			{Polo: "AT", Partes: []Parte{{Nome: "Maria Silva"}}},
			{Polo: "PA", Partes: []Parte{{Nome: "Banco Nacional S.A."}}},
		},
		Movimentos: []Movimento{
			{Nome: "DISTRIBUIÇÃO", Complementos: []Complemento{{Nome: "Partes", Valor: "ignored"}}},
		},
	}
	got := Normalize(raw).Parties
	if got != "Maria Silva vs. Banco Nacional S.A." {
		t.Fatalf("Parties = %q", got)
	}
}

func TestNormalizeSubjectPrincipalWins(t *testing.T) {
	raw := RawProcess{
		Assuntos: []Assunto{
			{Nome: "Dano Material"},
			{Nome: "Rescisão do contrato", Principal: true},
		},
	}
	if got := Normalize(raw).Subject; got != "Rescisão do contrato" {
		t.Fatalf("Subject = %q", got)
	}
}

func TestNormalizeSubjectFallsBackToFirstEntry(t *testing.T) {
	raw := RawProcess{
		Assuntos: []Assunto{
			{Nome: "Dano Material"},
			{Nome: "Dano Moral"},
		},
	}
	if got := Normalize(raw).Subject; got != "Dano Material" {
		t.Fatalf("Subject = %q", got)
	}
}

func TestNormalizeFieldsDefaultIndependently(t *testing.T) {
	raw := RawProcess{
		Classe:          &NamedEntry{Nome: "Procedimento Comum Cível"},
		DataAjuizamento: "2024-03-15T00:00:00.000Z",
	}
	got := Normalize(raw)
	if got.CaseClass != "Procedimento Comum Cível" {
		t.Fatalf("CaseClass = %q", got.CaseClass)
	}
	if got.FiledDate != "2024-03-15T00:00:00.000Z" {
		t.Fatalf("FiledDate passed through, got %q", got.FiledDate)
	}
	if got.Area != PlaceholderArea {
		t.Fatalf("Area = %q", got.Area)
	}
	if got.Subject != PlaceholderSubject {
		t.Fatalf("Subject = %q", got.Subject)
	}
	if got.Parties != PlaceholderParties {
		t.Fatalf("Parties = %q", got.Parties)
	}
}

func TestNormalizeSurvivesForeignShape(t *testing.T) {
	// A hit with fields this application has never seen must still decode
	// into RawProcess and normalize without error.
	payload := []byte(`{
		"numeroProcesso": "555",
		"tribunal": "TJMS",
		"grau": "G1",
		"orgaoJulgador": {"nome": "1ª Vara Cível"},
		"classe": {"codigo": 7, "nome": "Procedimento Comum Cível"},
		"sistema": {"codigo": 1, "nome": "PJe"}
	}`)
	var raw RawProcess
	if err := json.Unmarshal(payload, &raw); err != nil {
		t.Fatalf("unmarshal foreign shape: %v", err)
	}
	got := Normalize(raw)
	if got.CaseClass != "Procedimento Comum Cível" {
		t.Fatalf("CaseClass = %q", got.CaseClass)
	}
	if got.Parties != PlaceholderParties {
		t.Fatalf("Parties = %q", got.Parties)
	}
}
