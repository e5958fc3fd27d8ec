package jobcard

import (
	"strings"
	"testing"
	"time"
)

func TestNewRecordJobNumber(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)
	rec := NewRecord(now)

	if rec.JobNo != "JC-20240315-093045" {
		t.Errorf("JobNo = %q", rec.JobNo)
	}
	if rec.JobDate != "2024-03-15" {
		t.Errorf("JobDate = %q", rec.JobDate)
	}
}

func TestOperationsLine(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		want     string
	}{
		{"empty selection", nil, "None"},
		{"selection order ignored", []string{"Packing", "Cutting"}, "Cutting, Packing"},
		{"unknown operations dropped", []string{"Cutting", "Welding"}, "Cutting"},
		{"full vocabulary", Operations, strings.Join(Operations, ", ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Record{}
			rec.SelectOperations(tt.selected)
			if got := rec.OperationsLine(); got != tt.want {
				t.Errorf("OperationsLine() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestMachineBlockNormalize(t *testing.T) {
	tests := []struct {
		name          string
		block         MachineBlock
		wantGearSetup string
		wantProgramNo string
	}{
		{
			"traub keeps gear setup",
			MachineBlock{MachineType: MachineTraub, GearSetup: "42T", ProgramNo: "P9"},
			"42T", "",
		},
		{
			"cnc keeps program no",
			MachineBlock{MachineType: MachineCNC, GearSetup: "42T", ProgramNo: "O1234"},
			"", "O1234",
		},
		{
			"vmc keeps program no",
			MachineBlock{MachineType: MachineVMC, ProgramNo: "O1"},
			"", "O1",
		},
		{
			"lathe keeps neither",
			MachineBlock{MachineType: MachineLathe, GearSetup: "42T", ProgramNo: "O1"},
			"", "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.block.Normalize()
			if tt.block.GearSetup != tt.wantGearSetup {
				t.Errorf("GearSetup = %q, expected %q", tt.block.GearSetup, tt.wantGearSetup)
			}
			if tt.block.ProgramNo != tt.wantProgramNo {
				t.Errorf("ProgramNo = %q, expected %q", tt.block.ProgramNo, tt.wantProgramNo)
			}
		})
	}
}

func TestGrnWarnings(t *testing.T) {
	rec := &Record{}
	rec.GrnEntries.Append(GrnRow{QtyReceived: 100, OkQty: 95, RejectedQty: 5})
	rec.GrnEntries.Append(GrnRow{QtyReceived: 50, OkQty: 40, RejectedQty: 5})

	warnings := rec.GrnWarnings()
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, expected exactly one", warnings)
	}
	if !strings.Contains(warnings[0], "row 2") {
		t.Errorf("warning should name row 2: %q", warnings[0])
	}
}

func TestValidMachineType(t *testing.T) {
	if !ValidMachineType("Traub") {
		t.Error("Traub should be valid")
	}
	if ValidMachineType("Press") {
		t.Error("Press is not in the machine vocabulary")
	}
}
