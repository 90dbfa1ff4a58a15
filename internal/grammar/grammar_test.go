// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package grammar

import (
	"reflect"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	Register(ImportList, []TokenKind{1, 2, 3}, []TokenKind{4, 5})

	if got := First(ImportList); !reflect.DeepEqual(got, []TokenKind{1, 2, 3}) {
		t.Fatalf("First(ImportList) = %v, want [1 2 3]", got)
	}
	if got := Follow(ImportList); !reflect.DeepEqual(got, []TokenKind{4, 5}) {
		t.Fatalf("Follow(ImportList) = %v, want [4 5]", got)
	}
}

func TestRegisterNilLeavesExistingSetUntouched(t *testing.T) {
	Register(ConstDefinition, []TokenKind{7}, []TokenKind{8})
	Register(ConstDefinition, nil, []TokenKind{9})

	if got := First(ConstDefinition); !reflect.DeepEqual(got, []TokenKind{7}) {
		t.Fatalf("First(ConstDefinition) = %v, want unchanged [7]", got)
	}
	if got := Follow(ConstDefinition); !reflect.DeepEqual(got, []TokenKind{9}) {
		t.Fatalf("Follow(ConstDefinition) = %v, want updated [9]", got)
	}
}

func TestLookupOfUnregisteredProductionIsNil(t *testing.T) {
	if got := First(WhileStatement); got != nil {
		t.Fatalf("First(WhileStatement) = %v, want nil (never registered in this test)", got)
	}
}

func TestProductionIDStringKnownAndUnknown(t *testing.T) {
	if got := Block.String(); got != "Block" {
		t.Fatalf("Block.String() = %q, want %q", got, "Block")
	}
	if got := ProductionID(9999).String(); got != "InvalidProduction" {
		t.Fatalf("out-of-range ProductionID.String() = %q, want %q", got, "InvalidProduction")
	}
}

func TestNumProductionsCoversAllNamedProductions(t *testing.T) {
	if int(numProductions) != len(productionNames) {
		t.Fatalf("numProductions = %d, but productionNames has %d entries", numProductions, len(productionNames))
	}
}
