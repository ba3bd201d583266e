package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitScoreRequest_Validate(t *testing.T) {
	gross := func(v int) *int { return &v }

	tests := []struct {
		name    string
		req     SubmitScoreRequest
		wantErr bool
	}{
		{
			name: "gross score only",
			req:  SubmitScoreRequest{GrossScore: gross(85)},
		},
		{
			name: "sub-18 gross accepted for short courses",
			req:  SubmitScoreRequest{GrossScore: gross(16)},
		},
		{
			name:    "zero gross rejected",
			req:     SubmitScoreRequest{GrossScore: gross(0)},
			wantErr: true,
		},
		{
			name: "hole scores only",
			req: SubmitScoreRequest{HoleScores: []HoleScoreEntry{
				{HoleID: 1, Strokes: 4},
				{HoleID: 2, Strokes: 5},
			}},
		},
		{
			name:    "neither gross nor holes",
			req:     SubmitScoreRequest{},
			wantErr: true,
		},
		{
			name: "strokes above range rejected",
			req: SubmitScoreRequest{HoleScores: []HoleScoreEntry{
				{HoleID: 1, Strokes: 16},
			}},
			wantErr: true,
		},
		{
			name: "missing hole id rejected",
			req: SubmitScoreRequest{HoleScores: []HoleScoreEntry{
				{Strokes: 4},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
