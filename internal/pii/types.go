// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pii defines the closed set of personal-data types the engine
// detects, together with their descriptions, severity weights and the fixed
// priority order used for every tie-break in the pipeline.
package pii

// Type identifies one kind of personally identifiable information.
type Type string

// Supported PII types. The set is closed: validators, the resolver and the
// report aggregator all operate over exactly these values.
const (
	CPF        Type = "CPF"
	CNPJ       Type = "CNPJ"
	RG         Type = "RG"
	Email      Type = "EMAIL"
	Phone      Type = "PHONE"
	CEP        Type = "CEP"
	CreditCard Type = "CREDIT_CARD"
	SEIProcess Type = "SEI_PROCESS"
	PersonName Type = "PERSON_NAME"
	Location   Type = "LOCATION"
	DateBirth  Type = "DATE_BIRTH"
)

// descriptions holds the human-readable (Portuguese) description per type,
// used in report breakdowns.
var descriptions = map[Type]string{
	CPF:        "Cadastro de Pessoa Física",
	CNPJ:       "Cadastro Nacional de Pessoa Jurídica",
	RG:         "Registro Geral",
	Email:      "Endereço de E-mail",
	Phone:      "Número de Telefone",
	CEP:        "Código de Endereçamento Postal",
	CreditCard: "Número de Cartão de Crédito",
	SEIProcess: "Número de Processo SEI",
	PersonName: "Nome de Pessoa",
	Location:   "Endereço/Localização",
	DateBirth:  "Data de Nascimento",
}

// severity weights, higher means more sensitive. Used by report consumers
// that want a weighted view on top of the rule-based risk classifier.
var severities = map[Type]int{
	CPF:        10,
	RG:         9,
	CreditCard: 10,
	CNPJ:       7,
	SEIProcess: 5,
	CEP:        3,
	Phone:      6,
	Email:      6,
	DateBirth:  5,
	PersonName: 4,
	Location:   3,
}

// priorityOrder is the fixed total order over PII types. Lower index wins a
// tie-break. Pattern types come before model types so a validated structural
// match always outranks a heuristic entity match of the same length.
var priorityOrder = []Type{
	CPF, CNPJ, CreditCard, SEIProcess, RG, CEP, Phone, Email, DateBirth,
	PersonName, Location,
}

var priorityIndex = func() map[Type]int {
	m := make(map[Type]int, len(priorityOrder))
	for i, t := range priorityOrder {
		m[t] = i
	}
	return m
}()

// All returns every known type in priority order.
func All() []Type {
	out := make([]Type, len(priorityOrder))
	copy(out, priorityOrder)
	return out
}

// Valid reports whether t is one of the known PII types.
func Valid(t Type) bool {
	_, ok := priorityIndex[t]
	return ok
}

// Description returns the human-readable description for t. Unknown types
// echo their raw name so formatters never render an empty cell.
func Description(t Type) string {
	if d, ok := descriptions[t]; ok {
		return d
	}
	return string(t)
}

// Severity returns the severity weight for t, 0 for unknown types.
func Severity(t Type) int {
	return severities[t]
}

// Priority returns the tie-break rank of t; lower wins. Unknown types sort
// after every known type.
func Priority(t Type) int {
	if p, ok := priorityIndex[t]; ok {
		return p
	}
	return len(priorityOrder)
}
