package jobcard

import (
	"reflect"
	"testing"
)

func TestStoreDeletePreservesOrder(t *testing.T) {
	var s Store[ItemRow]
	s.Append(ItemRow{Description: "a"})
	s.Append(ItemRow{Description: "b"})
	s.Append(ItemRow{Description: "c"})
	s.Append(ItemRow{Description: "d"})

	if err := s.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if s.Len() != 3 {
		t.Fatalf("length after delete = %d, expected 3", s.Len())
	}
	got := []string{}
	for _, row := range s.Rows() {
		got = append(got, row.Description)
	}
	if !reflect.DeepEqual(got, []string{"a", "c", "d"}) {
		t.Errorf("rows after delete = %v, expected [a c d]", got)
	}
}

func TestStoreIndexBounds(t *testing.T) {
	var s Store[GrnRow]
	s.Append(GrnRow{Date: "2024-01-01"})

	tests := []struct {
		name    string
		index   int
		wantErr bool
	}{
		{"negative index", -1, true},
		{"index past end", 1, true},
		{"valid index", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Update(tt.index, func(r *GrnRow) { r.Remarks = "x" })
			if (err != nil) != tt.wantErr {
				t.Errorf("Update(%d) error = %v, wantErr %v", tt.index, err, tt.wantErr)
			}
		})
	}

	if err := s.Delete(5); err == nil {
		t.Error("Delete(5) on a one-row store should fail")
	}
	if s.Len() != 1 {
		t.Errorf("failed delete must not change the store, len = %d", s.Len())
	}
}

func TestStoreUpdateInPlace(t *testing.T) {
	var s Store[MaterialRow]
	s.Append(MaterialRow{RawMaterial: "EN8", Qty: 10})
	s.Append(MaterialRow{RawMaterial: "SS304", Qty: 5})

	if err := s.Update(1, func(r *MaterialRow) { r.Qty = 7 }); err != nil {
		t.Fatalf("update: %v", err)
	}

	rows := s.Rows()
	if rows[0].Qty != 10 || rows[1].Qty != 7 {
		t.Errorf("rows after update = %+v", rows)
	}
}

func TestNormalizeTable(t *testing.T) {
	columns := []string{"A", "B", "C"}

	tests := []struct {
		name string
		rows [][]any
		want [][]string
	}{
		{
			"short row right-padded",
			[][]any{{"x"}},
			[][]string{{"x", "", ""}},
		},
		{
			"long row truncated",
			[][]any{{"x", "y", "z", "extra"}},
			[][]string{{"x", "y", "z"}},
		},
		{
			"exact width unchanged",
			[][]any{{"x", "y", "z"}},
			[][]string{{"x", "y", "z"}},
		},
		{
			"nil cells become empty",
			[][]any{{"x", nil, "z"}},
			[][]string{{"x", "", "z"}},
		},
		{
			"numeric and bool cells stringified",
			[][]any{{5.0, 2.5, true}},
			[][]string{{"5", "2.5", "Yes"}},
		},
		{
			"no rows",
			nil,
			[][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTable(tt.rows, columns)
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeTable rows = %d, expected %d", len(got), len(tt.want))
			}
			for i := range got {
				if len(got[i]) != len(columns) {
					t.Errorf("row %d width = %d, expected %d", i, len(got[i]), len(columns))
				}
				if !reflect.DeepEqual(got[i], tt.want[i]) {
					t.Errorf("row %d = %v, expected %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestItemsTableAppliesDefaults(t *testing.T) {
	rec := &Record{}
	rec.Items.Append(ItemRow{Description: "Bush", Qty: 100})

	table := rec.ItemsTable()
	if len(table) != 1 {
		t.Fatalf("table rows = %d", len(table))
	}
	row := table[0]
	if len(row) != len(ItemColumns) {
		t.Fatalf("row width = %d, expected %d", len(row), len(ItemColumns))
	}
	if row[5] != "Nos" {
		t.Errorf("UOM default = %q, expected Nos", row[5])
	}
	if row[4] != "100" {
		t.Errorf("qty cell = %q, expected 100", row[4])
	}
}
