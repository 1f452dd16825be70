package model

import (
	"errors"
	"math"
	"testing"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name    string
		cpu     any
		memory  any
		region  any
		want    Request
		wantErr bool
	}{
		{
			name:   "flag strings",
			cpu:    "4",
			memory: "16",
			region: "us-east",
			want:   Request{CPU: 4, Memory: 16, Region: "us-east"},
		},
		{
			name:   "json numbers",
			cpu:    float64(8),
			memory: 32.5,
			region: "eu-west",
			want:   Request{CPU: 8, Memory: 32.5, Region: "eu-west"},
		},
		{
			name:   "nil region means all",
			cpu:    2,
			memory: 4,
			region: nil,
			want:   Request{CPU: 2, Memory: 4, Region: RegionAll},
		},
		{
			name:   "blank strings are trimmed",
			cpu:    " 8 ",
			memory: " 0.5 ",
			region: "   ",
			want:   Request{CPU: 8, Memory: 0.5, Region: RegionAll},
		},
		{
			name:   "cpu at limit",
			cpu:    float64(MaxCPU),
			memory: 16,
			region: "all",
			want:   Request{CPU: MaxCPU, Memory: 16, Region: RegionAll},
		},
		{
			name:   "zero capacity is allowed",
			cpu:    0,
			memory: 0,
			region: "all",
			want:   Request{CPU: 0, Memory: 0, Region: RegionAll},
		},
		{name: "missing cpu", cpu: nil, memory: 16, wantErr: true},
		{name: "empty cpu", cpu: "", memory: 16, wantErr: true},
		{name: "missing memory", cpu: 4, memory: nil, wantErr: true},
		{name: "non numeric cpu", cpu: "four", memory: 16, wantErr: true},
		{name: "fractional cpu", cpu: 4.5, memory: 16, wantErr: true},
		{name: "negative cpu", cpu: -1, memory: 16, wantErr: true},
		{name: "negative memory", cpu: 4, memory: -2, wantErr: true},
		{name: "nan memory", cpu: 4, memory: math.NaN(), wantErr: true},
		{name: "non numeric memory", cpu: 4, memory: "lots", wantErr: true},
		{name: "cpu beyond int range", cpu: 1e20, memory: 16, wantErr: true},
		{name: "cpu above limit", cpu: float64(MaxCPU) + 1, memory: 16, wantErr: true},
		{name: "boolean cpu", cpu: true, memory: 16, wantErr: true},
		{name: "boolean memory", cpu: 4, memory: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequest(tt.cpu, tt.memory, tt.region)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRequest() = %+v, want error", got)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("error %v is not ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRequest() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseRequest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRequestAllRegions(t *testing.T) {
	if !(Request{Region: "ALL"}).AllRegions() {
		t.Error("ALL should disable the region filter")
	}
	if (Request{Region: "us-east"}).AllRegions() {
		t.Error("us-east should not disable the region filter")
	}
}
