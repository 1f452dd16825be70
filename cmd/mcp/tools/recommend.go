package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/elC0mpa/instance-advisor/cmd/mcp/response"
	"github.com/elC0mpa/instance-advisor/model"
	"github.com/elC0mpa/instance-advisor/service/recommender"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

func capacityOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("cpu",
			mcp.Required(),
			mcp.Description("Required number of vCPUs (exact match)"),
		),
		mcp.WithNumber("memory",
			mcp.Required(),
			mcp.Description("Required memory in GB (exact match)"),
		),
		mcp.WithString("region",
			mcp.Description("Region filter, or \"all\" for every region"),
			mcp.DefaultString(model.RegionAll),
		),
	}
}

func weightsOption() mcp.ToolOption {
	return mcp.WithObject("weights",
		mcp.Description("Criterion weights keyed by vcpu, memory, price, performance or security. Defaults to {\"price\": 1}"),
	)
}

func matrixOption() mcp.ToolOption {
	return mcp.WithArray("comparison_matrix",
		mcp.Description("Square reciprocal pairwise comparison matrix over (performance, memory, price). Defaults to [[1,2,1],[0.5,1,0.5],[1,2,1]]"),
	)
}

// RegisterRecommendTools registers the recommendation tools with the MCP server
func RegisterRecommendTools(s *server.MCPServer, recommenderService recommender.RecommenderService, logger logrus.FieldLogger) {
	s.AddTool(
		mcp.NewTool("recommend_wsm",
			append(capacityOptions(),
				mcp.WithDescription("Rank offers matching the requested capacity with the Weighted Sum Model over normalized criteria"),
				weightsOption(),
			)...,
		),
		makeWSMHandler(recommenderService, logger),
	)

	s.AddTool(
		mcp.NewTool("recommend_ahp",
			append(capacityOptions(),
				mcp.WithDescription("Rank offers matching the requested capacity with the Analytic Hierarchy Process over performance, memory and price"),
				matrixOption(),
			)...,
		),
		makeAHPHandler(recommenderService, logger),
	)

	s.AddTool(
		mcp.NewTool("recommend_topsis",
			append(capacityOptions(),
				mcp.WithDescription("Rank offers matching the requested capacity with TOPSIS over security, memory and price"),
			)...,
		),
		makeTOPSISHandler(recommenderService, logger),
	)

	s.AddTool(
		mcp.NewTool("recommend_all",
			append(capacityOptions(),
				mcp.WithDescription("Rank offers matching the requested capacity with WSM, AHP and TOPSIS. A failing model does not hide the others"),
				weightsOption(),
				matrixOption(),
			)...,
		),
		makeAllHandler(recommenderService, logger),
	)
}

func makeWSMHandler(recommenderService recommender.RecommenderService, logger logrus.FieldLogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		req, err := parseRequest(args)
		if err != nil {
			return invalidInput(err), nil
		}
		weights, err := parseWeights(args)
		if err != nil {
			return invalidInput(err), nil
		}

		offers, err := recommenderService.RecommendWSM(ctx, req, weights)
		if err != nil {
			return failure(logger, model.AlgorithmWSM, err), nil
		}

		return jsonResult(response.ConvertAlgorithmResult(model.AlgorithmResult{
			Algorithm: model.AlgorithmWSM,
			Offers:    offers,
		}))
	}
}

func makeAHPHandler(recommenderService recommender.RecommenderService, logger logrus.FieldLogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		req, err := parseRequest(args)
		if err != nil {
			return invalidInput(err), nil
		}
		matrix, err := parseMatrix(args)
		if err != nil {
			return invalidInput(err), nil
		}

		offers, err := recommenderService.RecommendAHP(ctx, req, matrix)
		if err != nil {
			return failure(logger, model.AlgorithmAHP, err), nil
		}

		return jsonResult(response.ConvertAlgorithmResult(model.AlgorithmResult{
			Algorithm: model.AlgorithmAHP,
			Offers:    offers,
		}))
	}
}

func makeTOPSISHandler(recommenderService recommender.RecommenderService, logger logrus.FieldLogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req, err := parseRequest(request.GetArguments())
		if err != nil {
			return invalidInput(err), nil
		}

		offers, err := recommenderService.RecommendTOPSIS(ctx, req)
		if err != nil {
			return failure(logger, model.AlgorithmTOPSIS, err), nil
		}

		return jsonResult(response.ConvertAlgorithmResult(model.AlgorithmResult{
			Algorithm: model.AlgorithmTOPSIS,
			Offers:    offers,
		}))
	}
}

func makeAllHandler(recommenderService recommender.RecommenderService, logger logrus.FieldLogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		req, err := parseRequest(args)
		if err != nil {
			return invalidInput(err), nil
		}
		weights, err := parseWeights(args)
		if err != nil {
			return invalidInput(err), nil
		}

		// A malformed matrix only fails the AHP ranking
		opts := recommender.Options{Weights: weights}
		matrix, matrixErr := parseMatrix(args)
		if matrixErr == nil {
			opts.ComparisonMatrix = matrix
		}

		recs, err := recommenderService.RecommendAll(ctx, req, opts)
		if err != nil {
			return failure(logger, "all", err), nil
		}
		if matrixErr != nil {
			recs.AHP = model.AlgorithmResult{Algorithm: model.AlgorithmAHP, Err: matrixErr}
		}

		return jsonResult(response.ConvertRecommendations(recs))
	}
}

func invalidInput(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Invalid input: %v", err))
}

func failure(logger logrus.FieldLogger, algorithm model.Algorithm, err error) *mcp.CallToolResult {
	if errors.Is(err, model.ErrValidation) || errors.Is(err, model.ErrMalformedMatrix) {
		return invalidInput(err)
	}
	logger.WithError(err).WithField("algorithm", algorithm).Error("recommendation failed")
	return mcp.NewToolResultError(fmt.Sprintf("Failed to recommend offers: %v", err))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
