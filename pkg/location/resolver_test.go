package location

import "testing"

func TestResolve(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name     string
		text     string
		wantLat  float64
		wantLng  float64
		wantNone bool
	}{
		{
			name:    "direct area mention",
			text:    "I want matcha near darling harbour",
			wantLat: -33.8748,
			wantLng: 151.1987,
		},
		{
			name:    "case insensitive",
			text:    "Anything good in Surry Hills?",
			wantLat: -33.8860,
			wantLng: 151.2110,
		},
		{
			name:    "near phrase",
			text:    "somewhere close to newtown please",
			wantLat: -33.8980,
			wantLng: 151.1790,
		},
		{
			name:     "no recognized area",
			text:     "I just want a really good matcha latte",
			wantNone: true,
		},
		{
			name:     "empty text",
			text:     "",
			wantNone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.text)
			if tt.wantNone {
				if got != nil {
					t.Fatalf("Resolve(%q) = %v, want nil", tt.text, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Resolve(%q) = nil, want coordinates", tt.text)
			}
			if got.Lat != tt.wantLat || got.Lng != tt.wantLng {
				t.Errorf("Resolve(%q) = (%v, %v), want (%v, %v)",
					tt.text, got.Lat, got.Lng, tt.wantLat, tt.wantLng)
			}
		})
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	r := NewResolver()

	// Both areas are mentioned; gazetteer order decides.
	got := r.Resolve("matcha in sydney or maybe darling harbour")
	if got == nil {
		t.Fatal("Resolve = nil, want coordinates")
	}
	if got.Lat != -33.8748 {
		t.Errorf("Resolve picked lat %v, want darling harbour (-33.8748)", got.Lat)
	}
}
