// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MoleculeInsight Authors

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/molecule-insight/insight-server/internal/adapter"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/internal/mock"
	"github.com/molecule-insight/insight-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAnalysisSvc(t *testing.T, ctrl *gomock.Controller) (AnalysisService, *mock.MockAgentAdapter, *mock.MockPubChemAdapter) {
	t.Helper()

	mockAgent := mock.NewMockAgentAdapter(ctrl)
	mockPubChem := mock.NewMockPubChemAdapter(ctrl)

	return NewAnalysisService(mockAgent, mockPubChem, logger.Nop()), mockAgent, mockPubChem
}

func TestAnalysisService_Analyze_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAgent, _ := newTestAnalysisSvc(t, ctrl)
	ctx := context.Background()

	mockAgent.EXPECT().Analyze(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.AnalysisRequest) (models.AgentResponse, error) {
			assert.Equal(t, "market outlook", req.Query)
			assert.Equal(t, "aspirin", req.Molecule)
			return models.AgentResponse{
				Molecule: "aspirin",
				Results: map[string]models.AnalysisResult{
					"market": {Success: true, Report: "growing"},
				},
			}, nil
		},
	)

	resp, err := svc.Analyze(ctx, models.AnalysisRequest{
		Query:    "  market outlook  ",
		Molecule: " aspirin ",
	})

	require.NoError(t, err)
	assert.Equal(t, "aspirin", resp.Molecule)
	assert.True(t, resp.Results["market"].Success)
}

func TestAnalysisService_Analyze_EmptyRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAnalysisSvc(t, ctrl)

	_, err := svc.Analyze(context.Background(), models.AnalysisRequest{Query: "  ", Molecule: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAnalysisService_Analyze_UpstreamErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAgent, _ := newTestAnalysisSvc(t, ctrl)
	ctx := context.Background()

	upstream := &adapter.AgentRequestError{StatusCode: 422, Detail: "molecule required"}
	mockAgent.EXPECT().Analyze(ctx, gomock.Any()).Return(models.AgentResponse{}, upstream)

	_, err := svc.Analyze(ctx, models.AnalysisRequest{Molecule: "aspirin"})

	var reqErr *adapter.AgentRequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 422, reqErr.StatusCode)
	assert.Equal(t, "molecule required", reqErr.Detail)
}

func TestAnalysisService_Analyze_AgentUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAgent, _ := newTestAnalysisSvc(t, ctrl)
	ctx := context.Background()

	mockAgent.EXPECT().Analyze(ctx, gomock.Any()).
		Return(models.AgentResponse{}, adapter.ErrAgentUnavailable)

	_, err := svc.Analyze(ctx, models.AnalysisRequest{Molecule: "aspirin"})
	assert.ErrorIs(t, err, adapter.ErrAgentUnavailable)
}

func TestAnalysisService_LookupMolecule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockPubChem := newTestAnalysisSvc(t, ctrl)
	ctx := context.Background()

	mockPubChem.EXPECT().GetProperties(ctx, "aspirin").Return(models.MoleculeProperties{
		CID:              2244,
		MolecularFormula: "C9H8O4",
		MolecularWeight:  "180.16",
	}, nil)

	props, err := svc.LookupMolecule(ctx, "  aspirin ")
	require.NoError(t, err)
	assert.Equal(t, int64(2244), props.CID)
}

func TestAnalysisService_LookupMolecule_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAnalysisSvc(t, ctrl)

	_, err := svc.LookupMolecule(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAnalysisService_LookupMolecule_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockPubChem := newTestAnalysisSvc(t, ctrl)
	ctx := context.Background()

	mockPubChem.EXPECT().GetProperties(ctx, "unobtainium").
		Return(models.MoleculeProperties{}, adapter.ErrMoleculeNotFound)

	_, err := svc.LookupMolecule(ctx, "unobtainium")
	assert.ErrorIs(t, err, adapter.ErrMoleculeNotFound)
}

func TestAnalysisService_AgentStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAgent, _ := newTestAnalysisSvc(t, ctrl)
	ctx := context.Background()

	mockAgent.EXPECT().BaseURL().Return("http://agent.internal:8000")
	mockAgent.EXPECT().Health(ctx).Return(nil)
	mockAgent.EXPECT().Health(ctx).Return(errors.New("connection refused"))

	assert.Equal(t, "http://agent.internal:8000", svc.AgentURL())
	assert.True(t, svc.AgentHealthy(ctx))
	assert.False(t, svc.AgentHealthy(ctx))
}
