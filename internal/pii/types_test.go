// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pii

import "testing"

func TestAllCoversEveryType(t *testing.T) {
	all := All()
	if len(all) != 11 {
		t.Fatalf("All() returned %d types", len(all))
	}
	for _, typ := range all {
		if !Valid(typ) {
			t.Errorf("%s not Valid", typ)
		}
		if Description(typ) == "" {
			t.Errorf("%s has no description", typ)
		}
		if Severity(typ) == 0 {
			t.Errorf("%s has no severity", typ)
		}
	}
}

func TestPriorityOrder(t *testing.T) {
	// Documents beat contact data, contact data beats model entities.
	pairs := [][2]Type{
		{CPF, CNPJ},
		{CNPJ, CreditCard},
		{CreditCard, SEIProcess},
		{RG, CEP},
		{CEP, Phone},
		{Phone, Email},
		{Email, DateBirth},
		{DateBirth, PersonName},
		{PersonName, Location},
	}
	for _, p := range pairs {
		if Priority(p[0]) >= Priority(p[1]) {
			t.Errorf("%s should outrank %s", p[0], p[1])
		}
	}
}

func TestUnknownType(t *testing.T) {
	unknown := Type("PASSPORT")
	if Valid(unknown) {
		t.Error("unknown type reported valid")
	}
	if Description(unknown) != "PASSPORT" {
		t.Errorf("unknown description %q", Description(unknown))
	}
	if Priority(unknown) != len(All()) {
		t.Errorf("unknown priority %d", Priority(unknown))
	}
	if Severity(unknown) != 0 {
		t.Errorf("unknown severity %d", Severity(unknown))
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0] = Type("MUTATED")
	if All()[0] != CPF {
		t.Error("All() exposes internal slice")
	}
}
