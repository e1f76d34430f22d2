package domain

import "testing"

func TestQualify(t *testing.T) {
	tests := []struct {
		name, suffix, want string
	}{
		{"SRV01", ".corp.local", "SRV01.corp.local"},
		{"SRV01", "corp.local", "SRV01corp.local"},
		{"", ".corp.local", ".corp.local"},
		{"web-1", ".example.local", "web-1.example.local"},
	}
	for _, tt := range tests {
		h := Qualify(tt.name, tt.suffix)
		if h.FQDN != tt.want {
			t.Errorf("Qualify(%q, %q).FQDN = %q, want %q", tt.name, tt.suffix, h.FQDN, tt.want)
		}
		if h.Name != tt.name {
			t.Errorf("Qualify(%q, %q).Name = %q, want %q", tt.name, tt.suffix, h.Name, tt.name)
		}
		if got := StripSuffix(h.FQDN, tt.suffix); got != tt.name {
			t.Errorf("StripSuffix(%q, %q) = %q, want %q", h.FQDN, tt.suffix, got, tt.name)
		}
	}
}

func TestQualifyAllKeepsOrderAndDuplicates(t *testing.T) {
	hosts := QualifyAll([]string{"b", "a", "b"}, ".x")
	want := []string{"b.x", "a.x", "b.x"}
	if len(hosts) != len(want) {
		t.Fatalf("QualifyAll returned %d hosts, want %d", len(hosts), len(want))
	}
	for i, h := range hosts {
		if h.FQDN != want[i] {
			t.Errorf("host %d FQDN = %q, want %q", i, h.FQDN, want[i])
		}
	}
}

func TestHostFileName(t *testing.T) {
	if got := Qualify("SRV01", ".corp.local").FileName(); got != "SRV01.rdp" {
		t.Fatalf("FileName() = %q, want %q", got, "SRV01.rdp")
	}
}
