package flag

import (
	"flag"
	"os"

	"github.com/elC0mpa/instance-advisor/model"
)

func NewService() *service {
	return &service{}
}

type service struct{}

func (s *service) GetParsedFlags() (model.Flags, error) {
	return s.ParseArgs(os.Args[1:])
}

// ParseArgs parses args without touching the global flag set
func (s *service) ParseArgs(args []string) (model.Flags, error) {
	fs := flag.NewFlagSet("instance-advisor", flag.ContinueOnError)

	cpu := fs.String("cpu", "", "Required number of vCPUs")
	memory := fs.String("memory", "", "Required memory in GB")
	region := fs.String("region", model.RegionAll, "Region filter, or \"all\"")
	catalogFile := fs.String("catalog", "catalog.yaml", "Path to the YAML offer catalog")
	top := fs.Int("top", 10, "Number of offers shown per algorithm, 0 for all")
	chart := fs.Bool("chart", false, "Display a score chart for each algorithm")
	logLevel := fs.String("log-level", "warn", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return model.Flags{}, err
	}

	return model.Flags{
		CPU:         *cpu,
		Memory:      *memory,
		Region:      *region,
		CatalogFile: *catalogFile,
		Top:         *top,
		Chart:       *chart,
		LogLevel:    *logLevel,
	}, nil
}
