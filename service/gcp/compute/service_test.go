package gcpcompute

import "testing"

func TestExtractResourceName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.googleapis.com/compute/v1/projects/demo/regions/us-central1", "us-central1"},
		{"projects/demo/zones/europe-west1-b", "europe-west1-b"},
		{"us-east1", "us-east1"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := extractResourceName(tt.url); got != tt.want {
			t.Errorf("extractResourceName(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
