package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateJobRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request CreateJobRequest
		wantErr bool
	}{
		{name: "valid", request: CreateJobRequest{Title: "Backend", RequiredSkills: []string{"Go"}}},
		{name: "missing title", request: CreateJobRequest{RequiredSkills: []string{"Go"}}, wantErr: true},
		{name: "title too long", request: CreateJobRequest{Title: strings.Repeat("x", 201), RequiredSkills: []string{"Go"}}, wantErr: true},
		{name: "no skills", request: CreateJobRequest{Title: "Backend"}, wantErr: true},
		{name: "blank skill", request: CreateJobRequest{Title: "Backend", RequiredSkills: []string{"Go", ""}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateWorkshopRequest_Validation(t *testing.T) {
	assert.NoError(t, (&CreateWorkshopRequest{Title: "Intro to SQL", SkillsTaught: []string{"sql"}}).Validate())
	assert.Error(t, (&CreateWorkshopRequest{Title: "Intro to SQL"}).Validate())
	assert.Error(t, (&CreateWorkshopRequest{SkillsTaught: []string{"sql"}}).Validate())
}
