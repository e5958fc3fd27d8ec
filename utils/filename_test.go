package utils

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean job number", "JC-20250831-101500", "JC-20250831-101500"},
		{"path separators", "JC/2025\\08", "JC_2025_08"},
		{"windows reserved", `a:b*c?d"e<f>g|h`, "a_b_c_d_e_f_g_h"},
		{"spaces", "job card 12", "job_card_12"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
