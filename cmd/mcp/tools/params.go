package tools

import (
	"fmt"

	"github.com/elC0mpa/instance-advisor/model"
	"github.com/spf13/cast"
)

// parseRequest reads cpu, memory and region from untyped tool arguments
func parseRequest(args map[string]any) (model.Request, error) {
	return model.ParseRequest(args["cpu"], args["memory"], args["region"])
}

// parseWeights reads an optional {"criterion": weight} object. Absent means
// nil, which selects the default weights.
func parseWeights(args map[string]any) (model.Weights, error) {
	raw, ok := args["weights"]
	if !ok || raw == nil {
		return nil, nil
	}

	entries, err := cast.ToStringMapE(raw)
	if err != nil {
		return nil, &model.ValidationError{Field: "weights", Reason: "must be an object of criterion weights"}
	}

	weights := make(model.Weights, len(entries))
	for name, value := range entries {
		criterion, err := model.ParseCriterion(name)
		if err != nil {
			return nil, err
		}
		w, err := cast.ToFloat64E(value)
		if err != nil {
			return nil, &model.ValidationError{Field: "weights", Reason: fmt.Sprintf("weight for %s is not a number", name)}
		}
		weights[criterion] = w
	}

	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return weights, nil
}

// parseMatrix reads an optional square comparison matrix. Absent means nil,
// which selects the default matrix. Shape and reciprocity are checked by the
// AHP service.
func parseMatrix(args map[string]any) ([][]float64, error) {
	raw, ok := args["comparison_matrix"]
	if !ok || raw == nil {
		return nil, nil
	}

	rows, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, &model.MalformedMatrixError{Reason: "must be an array of rows"}
	}

	matrix := make([][]float64, len(rows))
	for i, row := range rows {
		cells, err := cast.ToSliceE(row)
		if err != nil {
			return nil, &model.MalformedMatrixError{Reason: fmt.Sprintf("row %d is not an array", i)}
		}
		matrix[i] = make([]float64, len(cells))
		for j, cell := range cells {
			v, err := cast.ToFloat64E(cell)
			if err != nil {
				return nil, &model.MalformedMatrixError{Reason: fmt.Sprintf("entry [%d][%d] is not a number", i, j)}
			}
			matrix[i][j] = v
		}
	}

	return matrix, nil
}
