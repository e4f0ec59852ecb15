// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/humaidq/stuntcheck/growth"
)

func TestGrowthReferenceDefinitions(t *testing.T) {
	t.Parallel()

	defs := GetGrowthReferenceDefinitions()
	if want := 2 * 2 * (growth.MaxAgeMonths + 1); len(defs) != want {
		t.Fatalf("expected %d definitions, got %d", want, len(defs))
	}

	seen := make(map[string]bool, len(defs))

	for _, def := range defs {
		key := fmt.Sprintf("%s/%d/%s", def.Sex, def.AgeMonths, def.Indicator)
		if seen[key] {
			t.Fatalf("duplicate definition %s/%d/%s", def.Sex, def.AgeMonths, def.Indicator)
		}
		seen[key] = true

		switch def.Indicator {
		case IndicatorHeightForAge:
			if def.SDNeg1 != nil || def.SDPos1 != nil || def.SDPos3 != nil {
				t.Fatalf("height row %s/%d carries weight-only positions", def.Sex, def.AgeMonths)
			}
		case IndicatorWeightForAge:
			if def.SDNeg1 == nil || def.SDPos1 == nil || def.SDPos3 == nil {
				t.Fatalf("weight row %s/%d missing positions", def.Sex, def.AgeMonths)
			}
			if !(def.SDNeg2 < *def.SDNeg1 && *def.SDNeg1 < def.Median && def.Median < *def.SDPos1) {
				t.Fatalf("weight row %s/%d not ordered", def.Sex, def.AgeMonths)
			}
		default:
			t.Fatalf("unexpected indicator %q", def.Indicator)
		}

		if !(def.SDNeg3 < def.SDNeg2 && def.SDNeg2 < def.Median && def.Median < def.SDPos2) {
			t.Fatalf("row %s/%d/%s not ordered", def.Sex, def.AgeMonths, def.Indicator)
		}
	}
}

func TestSyncGrowthReferences(t *testing.T) {
	openTestDatabase(t)
	ctx := testContext()

	n, err := SyncGrowthReferences(ctx)
	if err != nil {
		t.Fatalf("SyncGrowthReferences failed: %v", err)
	}
	if n != len(GetGrowthReferenceDefinitions()) {
		t.Fatalf("expected %d rows synced, got %d", len(GetGrowthReferenceDefinitions()), n)
	}

	if _, err := SyncGrowthReferences(ctx); err != nil {
		t.Fatalf("second SyncGrowthReferences failed: %v", err)
	}

	count, err := CountGrowthReferences(ctx)
	if err != nil {
		t.Fatalf("CountGrowthReferences failed: %v", err)
	}
	if count != n {
		t.Fatalf("expected %d mirrored rows, got %d", n, count)
	}

	ref, err := GetGrowthReference(ctx, growth.SexMale, 3, IndicatorHeightForAge)
	if err != nil {
		t.Fatalf("GetGrowthReference failed: %v", err)
	}

	band, err := growth.HeightBandFor(growth.SexMale, 3)
	if err != nil {
		t.Fatalf("HeightBandFor failed: %v", err)
	}
	if ref.SDNeg2 != band.M2 || ref.Median != band.Median || ref.SDNeg1 != nil {
		t.Fatalf("mirrored row does not match table: %+v", ref)
	}

	weight, err := GetGrowthReference(ctx, growth.SexFemale, 60, IndicatorWeightForAge)
	if err != nil {
		t.Fatalf("GetGrowthReference failed: %v", err)
	}
	if weight.SDPos3 == nil || weight.Sex != growth.SexFemale {
		t.Fatalf("unexpected weight row: %+v", weight)
	}

	if _, err := GetGrowthReference(ctx, growth.SexMale, 61, IndicatorHeightForAge); !errors.Is(err, ErrGrowthReferenceNotFound) {
		t.Fatalf("expected ErrGrowthReferenceNotFound, got %v", err)
	}
}
