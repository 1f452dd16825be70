package flag

import (
	"testing"

	"github.com/elC0mpa/instance-advisor/model"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    model.Flags
		wantErr bool
	}{
		{
			name: "defaults",
			args: nil,
			want: model.Flags{Region: model.RegionAll, CatalogFile: "catalog.yaml", Top: 10, LogLevel: "warn"},
		},
		{
			name: "all flags",
			args: []string{"--cpu", "4", "--memory", "16", "--region", "us-east", "--catalog", "offers.yaml", "--top", "3", "--chart", "--log-level", "debug"},
			want: model.Flags{CPU: "4", Memory: "16", Region: "us-east", CatalogFile: "offers.yaml", Top: 3, Chart: true, LogLevel: "debug"},
		},
		{
			name:    "unknown flag",
			args:    []string{"--gpu", "1"},
			wantErr: true,
		},
		{
			name:    "non numeric top",
			args:    []string{"--top", "many"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewService().ParseArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseArgs() = %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArgs() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseArgs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
