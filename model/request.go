package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// MaxCPU bounds the vCPU count a request may ask for
const MaxCPU = math.MaxInt32

// Request is the validated capacity query shared by all algorithms
type Request struct {
	CPU    int
	Memory float64
	Region string
}

// ParseRequest coerces untyped input (flag strings, JSON numbers) into a
// Request. An empty region means RegionAll.
func ParseRequest(cpu, memory, region any) (Request, error) {
	if cpu == nil || cpu == "" {
		return Request{}, &ValidationError{Field: "cpu", Reason: "required"}
	}
	if memory == nil || memory == "" {
		return Request{}, &ValidationError{Field: "memory", Reason: "required"}
	}

	cpuValue, err := toNumber(cpu)
	if err != nil {
		return Request{}, &ValidationError{Field: "cpu", Reason: fmt.Sprintf("%v is not a number", cpu)}
	}
	if math.IsNaN(cpuValue) || math.IsInf(cpuValue, 0) || cpuValue != math.Trunc(cpuValue) {
		return Request{}, &ValidationError{Field: "cpu", Reason: fmt.Sprintf("%v is not an integer", cpu)}
	}
	if cpuValue < 0 {
		return Request{}, &ValidationError{Field: "cpu", Reason: "must not be negative"}
	}
	if cpuValue > MaxCPU {
		return Request{}, &ValidationError{Field: "cpu", Reason: fmt.Sprintf("must not exceed %d", MaxCPU)}
	}

	memoryValue, err := toNumber(memory)
	if err != nil {
		return Request{}, &ValidationError{Field: "memory", Reason: fmt.Sprintf("%v is not a number", memory)}
	}
	if math.IsNaN(memoryValue) || math.IsInf(memoryValue, 0) {
		return Request{}, &ValidationError{Field: "memory", Reason: "must be finite"}
	}
	if memoryValue < 0 {
		return Request{}, &ValidationError{Field: "memory", Reason: "must not be negative"}
	}

	regionValue := RegionAll
	if region != nil {
		s, err := cast.ToStringE(region)
		if err != nil {
			return Request{}, &ValidationError{Field: "region", Reason: fmt.Sprintf("%v is not a string", region)}
		}
		if s = strings.TrimSpace(s); s != "" {
			regionValue = s
		}
	}

	return Request{
		CPU:    int(cpuValue),
		Memory: memoryValue,
		Region: regionValue,
	}, nil
}

// AllRegions reports whether the request disables region filtering
func (r Request) AllRegions() bool {
	return strings.EqualFold(r.Region, RegionAll)
}

// toNumber accepts numbers and numeric strings. Booleans are rejected even
// though cast would read them as 0 or 1.
func toNumber(v any) (float64, error) {
	switch t := v.(type) {
	case bool:
		return 0, fmt.Errorf("unable to cast %#v to a number", v)
	case string:
		return cast.ToFloat64E(strings.TrimSpace(t))
	}
	return cast.ToFloat64E(v)
}
