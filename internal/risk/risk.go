// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package risk maps PII-type counts to an ordinal risk level. The mapping
// is a first-match rule ladder rather than a weighted score, so it stays
// auditable and stable under small count changes.
package risk

import (
	"lgpd-scan/internal/pii"
)

// Level is the ordinal risk classification of a record or batch.
type Level int

// Risk levels, lowest to highest. A report's level is the maximum level any
// rule triggers; it is never downgraded by the absence of other triggers.
const (
	Minimo Level = iota
	Baixo
	Medio
	Alto
	Critico
)

func (l Level) String() string {
	switch l {
	case Critico:
		return "CRITICO"
	case Alto:
		return "ALTO"
	case Medio:
		return "MEDIO"
	case Baixo:
		return "BAIXO"
	default:
		return "MINIMO"
	}
}

// MarshalText implements encoding.TextMarshaler so levels serialize as
// their names in JSON and YAML reports.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText restores a level from its name, for reports read back from
// the store. Unknown names map to MINIMO rather than failing the load.
func (l *Level) UnmarshalText(text []byte) error {
	switch string(text) {
	case "CRITICO":
		*l = Critico
	case "ALTO":
		*l = Alto
	case "MEDIO":
		*l = Medio
	case "BAIXO":
		*l = Baixo
	default:
		*l = Minimo
	}
	return nil
}

// DefaultHighVolumeThreshold is the contact-data volume above which a batch
// is promoted to ALTO even without document numbers.
const DefaultHighVolumeThreshold = 10

// criticalTypes trigger CRITICO on a single occurrence.
var criticalTypes = []pii.Type{pii.CPF, pii.RG, pii.CreditCard}

// Classifier assigns risk levels from aggregated counts.
type Classifier struct {
	// HighVolumeThreshold is the EMAIL/PHONE count that must be exceeded
	// within the aggregation scope to trigger ALTO.
	HighVolumeThreshold int
}

// NewClassifier returns a classifier with the default threshold.
func NewClassifier() *Classifier {
	return &Classifier{HighVolumeThreshold: DefaultHighVolumeThreshold}
}

// Classify maps counts to a level. Rules are evaluated high to low; the
// first match wins:
//
//	CRITICO  any CPF, RG or CREDIT_CARD
//	ALTO     EMAIL or PHONE count above the high-volume threshold
//	MEDIO    any PERSON_NAME or LOCATION
//	BAIXO    any other PII
//	MINIMO   nothing detected
func (c *Classifier) Classify(counts map[pii.Type]int) Level {
	for _, t := range criticalTypes {
		if counts[t] > 0 {
			return Critico
		}
	}

	threshold := c.HighVolumeThreshold
	if threshold <= 0 {
		threshold = DefaultHighVolumeThreshold
	}
	if counts[pii.Email] > threshold || counts[pii.Phone] > threshold {
		return Alto
	}

	if counts[pii.PersonName] > 0 || counts[pii.Location] > 0 {
		return Medio
	}

	for _, n := range counts {
		if n > 0 {
			return Baixo
		}
	}
	return Minimo
}

// Description returns the operator-facing explanation for a level.
func Description(l Level) string {
	switch l {
	case Critico:
		return "Dados altamente sensíveis detectados (CPF, RG, Cartão). Requer máxima proteção."
	case Alto:
		return "Alto volume de dados de contato detectado. Atenção especial necessária."
	case Medio:
		return "Dados pessoais identificáveis detectados. Proteção adequada recomendada."
	case Baixo:
		return "Poucos dados sensíveis detectados. Risco controlável."
	default:
		return "Nenhum dado sensível significativo detectado."
	}
}

// Recommendations generates remediation guidance from the level and the
// detected type mix.
func Recommendations(l Level, counts map[pii.Type]int) []string {
	var recs []string

	if l >= Alto {
		recs = append(recs,
			"Implementar criptografia adicional para armazenamento",
			"Restringir acesso aos dados apenas a usuários autorizados",
			"Implementar log de auditoria para todos os acessos")
	}
	if counts[pii.CPF] > 0 || counts[pii.RG] > 0 {
		recs = append(recs, "Documentos de identificação detectados - considerar pseudonimização")
	}
	if counts[pii.Email] > 0 || counts[pii.Phone] > 0 {
		recs = append(recs, "Dados de contato detectados - obter consentimento explícito para uso")
	}
	if counts[pii.CreditCard] > 0 {
		recs = append(recs, "URGENTE: Dados financeiros detectados - validar compliance PCI-DSS")
	}

	if len(recs) == 0 {
		recs = append(recs, "Manter boas práticas de segurança da informação")
	}
	return recs
}
