//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBadgeTier(t *testing.T) {
	tests := []struct {
		input   string
		want    BadgeTier
		wantErr bool
	}{
		{input: "GURU", want: BadgeGuru},
		{input: "guru", want: BadgeGuru},
		{input: " Acharya ", want: BadgeAcharya},
		{input: "siksha-sevi", want: BadgeSikshaSevi},
		{input: "siksha sevi", want: BadgeSikshaSevi},
		{input: "SHIKSHARTHI", want: BadgeShiksharthi},
		{input: "utsaahi_intern", want: BadgeUtsaahiIntern},
		{input: "", wantErr: true},
		{input: "MASTER", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBadgeTier(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBadgeTier_UnmarshalJSON(t *testing.T) {
	var badge Badge
	require.NoError(t, json.Unmarshal([]byte(`{"tier":"acharya"}`), &badge))
	assert.Equal(t, BadgeAcharya, badge.Tier)

	err := json.Unmarshal([]byte(`{"tier":"wizard"}`), &badge)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown badge tier")
}

func TestHasTier(t *testing.T) {
	badges := []Badge{{Tier: BadgeShiksharthi}, {Tier: BadgeAcharya}}
	assert.True(t, HasTier(badges, BadgeAcharya))
	assert.False(t, HasTier(badges, BadgeGuru))
	assert.False(t, HasTier(nil, BadgeGuru))
}

func TestMatchRequest_Validation(t *testing.T) {
	valid := MatchRequest{
		ProfileSkills: []string{"JS"},
		TargetSkills:  []string{"JavaScript"},
		Badges:        []BadgeTier{BadgeGuru},
	}
	assert.NoError(t, valid.Validate())
	assert.Equal(t, []Badge{{Tier: BadgeGuru}}, valid.BadgeList())

	emptyProfile := MatchRequest{TargetSkills: []string{"Python"}}
	assert.NoError(t, emptyProfile.Validate(), "an empty profile is a legitimate zero-overlap request")

	noTarget := MatchRequest{ProfileSkills: []string{"Python"}}
	assert.Error(t, noTarget.Validate())
}
