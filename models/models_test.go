package models

import "testing"

func TestParseRequestStatus(t *testing.T) {
	for _, valid := range []string{"pending", "approved", "rejected"} {
		if _, err := ParseRequestStatus(valid); err != nil {
			t.Fatalf("ParseRequestStatus(%q) error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "Pending", "done", "APPROVED"} {
		if _, err := ParseRequestStatus(invalid); err == nil {
			t.Fatalf("ParseRequestStatus(%q): expected error", invalid)
		}
	}
}

func TestParsePriority(t *testing.T) {
	for _, valid := range []string{"Low", "Medium", "High"} {
		if _, err := ParsePriority(valid); err != nil {
			t.Fatalf("ParsePriority(%q) error: %v", valid, err)
		}
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatal("ParsePriority(\"urgent\"): expected error")
	}
}

func TestParseRole(t *testing.T) {
	if role, ok := ParseRole("admin"); !ok || role != RoleAdmin {
		t.Fatalf("ParseRole(\"admin\") = %q, %v", role, ok)
	}
	if _, ok := ParseRole("root"); ok {
		t.Fatal("ParseRole(\"root\"): expected failure")
	}
}
